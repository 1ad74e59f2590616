package cms

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/revas-hq/website-go/internal/domain/entities/content"
)

// Schema-validation error messages surfaced to the front-end. Always generic
// failures, never a not-found.
const (
	ErrInvalidWebsiteSchema = "invalid_website_data_schema_from_api"
	ErrInvalidPageSchema    = "invalid_page_data_schema_from_api"
	ErrInvalidFeedSchema    = "invalid_feed_data_schema_from_api"
)

func validateAttachment(attachment *content.Attachment) error {
	if attachment == nil {
		return nil
	}
	return validation.ValidateStruct(attachment,
		validation.Field(&attachment.MediaType,
			validation.Required,
			validation.In(content.MediaTypeImage, content.MediaTypeYouTubeVideo)),
	)
}

func validateLink(link *content.Link) error {
	if link == nil {
		return nil
	}
	return validation.ValidateStruct(link,
		validation.Field(&link.URL, validation.Required),
	)
}

func validateBlockItem(item *content.BlockItem) error {
	if err := validateLink(item.Link); err != nil {
		return err
	}
	return validateAttachment(item.Attachment)
}

func validateBlock(block *content.Block) error {
	if err := validation.ValidateStruct(block,
		validation.Field(&block.BlockLayout,
			validation.In(content.BlockLayoutMain, content.BlockLayoutDefault)),
		validation.Field(&block.ItemsLayout,
			validation.In(content.ItemsLayoutLinear, content.ItemsLayoutGrid, content.ItemsLayoutColumns)),
	); err != nil {
		return err
	}
	if err := validateLink(block.Link); err != nil {
		return err
	}
	if err := validateAttachment(block.Attachment); err != nil {
		return err
	}
	for i := range block.Items {
		if err := validateBlockItem(&block.Items[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateWebsite(website *content.Website) error {
	if err := validation.ValidateStruct(website,
		validation.Field(&website.ID, validation.Required),
		validation.Field(&website.LanguageCode, validation.Required),
	); err != nil {
		return err
	}
	if website.Notification != nil {
		if err := validateLink(website.Notification.Link); err != nil {
			return err
		}
	}
	if err := validateLink(website.MainLink); err != nil {
		return err
	}
	if website.MainItem != nil {
		if err := validateBlockItem(website.MainItem); err != nil {
			return err
		}
	}
	for i := range website.Navigation {
		if err := validateLink(&website.Navigation[i]); err != nil {
			return err
		}
	}
	for i := range website.Links {
		if err := validateLink(&website.Links[i]); err != nil {
			return err
		}
	}
	return nil
}

func validatePage(page *content.Page) error {
	if err := validation.ValidateStruct(page,
		validation.Field(&page.ID, validation.Required),
		validation.Field(&page.Slug, validation.Required),
	); err != nil {
		return err
	}
	for i := range page.Blocks {
		if err := validateBlock(&page.Blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateFeed(feed *content.Feed) error {
	if err := validation.ValidateStruct(feed,
		validation.Field(&feed.Title, validation.Required),
	); err != nil {
		return err
	}
	for i := range feed.Items {
		item := &feed.Items[i]
		if err := validation.ValidateStruct(item,
			validation.Field(&item.ID, validation.Required),
		); err != nil {
			return err
		}
	}
	return nil
}
