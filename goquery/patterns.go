package goquery

import "regexp"

// Pattern tables shared by the stripper, walker and container selector.
// They are built once and only read afterwards.

// SkipTags are elements whose subtree never carries article content.
// The stripper removes them; the walker never descends into them.
var SkipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"form":     true,
	"nav":      true,
	"header":   true,
	"footer":   true,
	"aside":    true,
}

// StripClassPattern matches class attributes of navigation, metadata,
// sharing, comment, related-content and widget blocks.
var StripClassPattern = regexp.MustCompile(`(?i)breadcrumb|header|footer|nav|author|time|date|share|social|comment|relate|sidebar|widget|tool|tag|category-label|detail-tab`)

// StripIDPattern matches id attributes of page chrome.
var StripIDPattern = regexp.MustCompile(`(?i)header|footer|nav|sidebar|comment|relate`)

// AdPattern matches class or id attributes of ad slots on div and section elements.
var AdPattern = regexp.MustCompile(`(?i)\b(ad|ads|advertisement|sponsor|taboola|outbrain|banner)\b`)

// HighlightClassPattern matches highlight and tag-title blocks that are
// removed only when their text carries a topic phrase.
var HighlightClassPattern = regexp.MustCompile(`(?i)detail__cmain-flex|detail-tab|tag-title|highlight`)

// TopicPhrases mark topic, tag and related-article widgets by their text.
// Matched against lowercased flattened text of block containers.
var TopicPhrases = []string{
	"khám phá thêm", "chủ đề", "từ khóa", "tin liên quan",
	"cùng chuyên mục", "đọc thêm", "có thể bạn quan tâm",
	"dòng sự kiện", "detail info=", "siteid185", "threadid",
	"tin đọc nhiều", "for inquiries",
	"related articles", "explore more topics", "readers also liked", "you may also like",
}

// TopicBlockTags are the block containers checked against TopicPhrases.
const TopicBlockTags = "div, section, aside, ul, ol, p"

// TagRoleAttrs are attributes whose value marks a tag list when it contains TagRoleToken.
var TagRoleAttrs = []string{"role", "data-role", "data-component", "data-widget"}

// TagRoleToken is the attribute value token marking tag lists.
const TagRoleToken = "tags"

// BlockClassPattern is the narrower class check the walker applies at every
// element, behind the stripper.
var BlockClassPattern = regexp.MustCompile(`(?i)breadcrumb|author|time-|date-|share|social|comment|relate|tag|category-label|discover|thread|topic|keyword|detail-tab`)

// CategoryStopwords are bare section labels with no article value.
// Compared against whole lowercased text.
var CategoryStopwords = stringSet(
	"thể thao", "bóng đá việt nam", "kinh tế", "bất động sản",
	"tín dụng", "ngân hàng", "chính phủ", "highlight",
)

// BoilerplatePhrases mark share prompts and dateline paragraphs.
var BoilerplatePhrases = []string{"chia sẻ", "khám phá thêm", "giờ đông dương", "@gmail.com"}

// EmailPattern matches e-mail addresses in contact paragraphs.
var EmailPattern = regexp.MustCompile(`(?i)[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}`)

// TimezonePattern matches timezone offsets such as "GMT+7" or "GMT+0700".
var TimezonePattern = regexp.MustCompile(`(?i)gmt\s*[+\-]\s*\d{1,2}(:?\d{2})?\b`)

// VideoProviders are domains of known video players; an iframe whose host
// is one of them or a subdomain of one is kept.
var VideoProviders = []string{
	"youtube.com", "youtube-nocookie.com", "youtu.be", "vimeo.com",
	"player.vcdn.vn", "video.thanhnien.vn", "vnecdn.net",
}

// MediaHintPattern matches iframe paths and queries that hint at a player.
var MediaHintPattern = regexp.MustCompile(`(?i)video|embed|player`)

// ImageSrcAttrs is the preference order for image URLs; lazy-loading
// attributes come first because src often holds a placeholder.
var ImageSrcAttrs = []string{"data-src", "src", "data-original"}

// VideoSrcAttrs is the preference order for video URLs.
var VideoSrcAttrs = []string{"src", "data-src", "data-original"}

// SourceSrcAttrs is the preference order for nested <source> URLs.
var SourceSrcAttrs = []string{"src", "data-src"}

// IframeSrcAttrs is the preference order for iframe URLs.
var IframeSrcAttrs = []string{"src", "data-src"}

const (
	// minParagraphLength is the rune count a paragraph must exceed.
	minParagraphLength = 5

	// minFallbackLineLength is the rune count a fallback line must exceed.
	minFallbackLineLength = 10
)

func stringSet(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}
