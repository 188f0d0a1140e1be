package embedding

import "brainvault/internal/models"

// Prompt builds the enriched text embedded for a content item. Each content
// type appends a descriptive suffix so that semantically thin titles still
// land near related queries.
func Prompt(title string, contentType models.ContentType) string {
	switch contentType {
	case models.ContentTypeYoutube:
		return title + " youtube video content tutorial"
	case models.ContentTypeTwitter:
		return title + " twitter tweet social media post"
	case models.ContentTypeAudio:
		return title + " audio podcast recording"
	case models.ContentTypeArticle:
		return title + " article blog post reading"
	default:
		return title
	}
}
