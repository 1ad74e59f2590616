// Package services provides the application loaders that orchestrate
// preference resolution, remote CMS calls and normalization into the flat
// view-models the renderer consumes.
package services

import (
	"github.com/revas-hq/website-go/internal/domain/entities/content"
	"github.com/revas-hq/website-go/internal/domain/entities/rendering"
	domain "github.com/revas-hq/website-go/internal/domain/services"
)

// metadataOrEmpty guarantees the pass-through styling bag is never nil.
func metadataOrEmpty(metadata map[string]string) map[string]string {
	if metadata == nil {
		return map[string]string{}
	}
	return metadata
}

// flattenedLink carries a nullable link's fields resolved to defaults.
type flattenedLink struct {
	Title    string
	URL      string
	Metadata map[string]string
}

func flattenLink(link *content.Link) flattenedLink {
	if link == nil {
		return flattenedLink{Metadata: map[string]string{}}
	}
	return flattenedLink{
		Title:    link.Title,
		URL:      link.URL,
		Metadata: metadataOrEmpty(link.Metadata),
	}
}

// flattenedAttachment carries a nullable attachment's fields resolved to
// defaults. The media type defaults to image so the renderer always has a
// valid discriminator.
type flattenedAttachment struct {
	URL         string
	MediaType   string
	Description string
	Caption     string
	Metadata    map[string]string
}

func flattenAttachment(attachment *content.Attachment) flattenedAttachment {
	if attachment == nil {
		return flattenedAttachment{
			MediaType: content.MediaTypeImage,
			Metadata:  map[string]string{},
		}
	}
	mediaType := attachment.MediaType
	if mediaType == "" {
		mediaType = content.MediaTypeImage
	}
	return flattenedAttachment{
		URL:         attachment.URL,
		MediaType:   mediaType,
		Description: attachment.Description,
		Caption:     attachment.Caption,
		Metadata:    metadataOrEmpty(attachment.Metadata),
	}
}

func normalizeBlockItem(item content.BlockItem) rendering.BlockItemUI {
	link := flattenLink(item.Link)
	attachment := flattenAttachment(item.Attachment)
	return rendering.BlockItemUI{
		Title:                 item.Title,
		Description:           item.Description,
		LinkTitle:             link.Title,
		LinkURL:               link.URL,
		LinkMetadata:          link.Metadata,
		AttachmentURL:         attachment.URL,
		AttachmentMediaType:   attachment.MediaType,
		AttachmentDescription: attachment.Description,
		AttachmentCaption:     attachment.Caption,
		AttachmentMetadata:    attachment.Metadata,
		Metadata:              metadataOrEmpty(item.Metadata),
	}
}

func normalizeBlock(block content.Block) rendering.BlockUI {
	link := flattenLink(block.Link)
	attachment := flattenAttachment(block.Attachment)

	items := make([]rendering.BlockItemUI, len(block.Items))
	for i, item := range block.Items {
		items[i] = normalizeBlockItem(item)
	}

	return rendering.BlockUI{
		HTML:                  block.HTML,
		BlockLayout:           block.BlockLayout,
		Title:                 block.Title,
		Description:           block.Description,
		LinkTitle:             link.Title,
		LinkURL:               link.URL,
		LinkMetadata:          link.Metadata,
		AttachmentURL:         attachment.URL,
		AttachmentMediaType:   attachment.MediaType,
		AttachmentDescription: attachment.Description,
		AttachmentCaption:     attachment.Caption,
		AttachmentMetadata:    attachment.Metadata,
		ItemsLayout:           block.ItemsLayout,
		Items:                 items,
		Metadata:              metadataOrEmpty(block.Metadata),
	}
}

func normalizeLink(link content.Link) rendering.LinkUI {
	return rendering.LinkUI{
		Title:    link.Title,
		URL:      link.URL,
		External: domain.IsExternalURL(link.URL),
		Metadata: metadataOrEmpty(link.Metadata),
	}
}

func normalizeAuthor(author content.Author) rendering.AuthorUI {
	return rendering.AuthorUI{
		Name:                  author.Name,
		Description:           author.Description,
		AttachmentURL:         author.ImageURL,
		AttachmentMediaType:   content.MediaTypeImage,
		AttachmentDescription: author.Name,
		Metadata:              metadataOrEmpty(author.Metadata),
	}
}

func normalizeAuthors(authors []content.Author) []rendering.AuthorUI {
	out := make([]rendering.AuthorUI, len(authors))
	for i, author := range authors {
		out[i] = normalizeAuthor(author)
	}
	return out
}

// partitionLinks splits a website's mixed-purpose links into plain links and
// socials. Every input link lands in exactly one output list; social links
// are tagged with their network type, defaulting to "link".
func partitionLinks(mixed []content.Link) ([]rendering.LinkUI, []rendering.SocialLinkUI) {
	links := []rendering.LinkUI{}
	socials := []rendering.SocialLinkUI{}

	for _, link := range mixed {
		network := domain.SocialNetworkOf(link.URL)
		if network == "" {
			links = append(links, normalizeLink(link))
			continue
		}
		socials = append(socials, rendering.SocialLinkUI{
			Title:    link.Title,
			URL:      link.URL,
			Type:     network,
			Metadata: metadataOrEmpty(link.Metadata),
		})
	}

	return links, socials
}
