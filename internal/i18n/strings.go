package i18n

// Key identifies a UI label.
type Key string

// Navigation
const (
	KeyHome  Key = "home"
	KeyBlog  Key = "blog"
	KeyAbout Key = "about"
)

// Common labels
const (
	KeyPosts        Key = "posts"
	KeyTags         Key = "tags"
	KeyReadMore     Key = "readMore"
	KeyReadMyPosts  Key = "readMyPosts"
	KeyViewAllPosts Key = "viewAllPosts"
	KeyLatestPosts  Key = "latestPosts"
	KeyUpdated      Key = "updated"
)

// Social and sharing
const (
	KeyGithub         Key = "github"
	KeyTwitter        Key = "twitter"
	KeyEmail          Key = "email"
	KeyRSSFeed        Key = "rssFeed"
	KeyShareOnTwitter Key = "shareOnTwitter"
	KeyCopyLink       Key = "copyLink"
)

// Accessibility labels
const (
	KeyAriaGithub       Key = "ariaGithub"
	KeyAriaTwitter      Key = "ariaTwitter"
	KeyAriaEmail        Key = "ariaEmail"
	KeyAriaRSSFeed      Key = "ariaRssFeed"
	KeyAriaShareTwitter Key = "ariaShareTwitter"
	KeyAriaCopyLink     Key = "ariaCopyLink"
)

// Theme preview samples
const (
	KeySampleHeading Key = "sampleHeading"
	KeySampleText    Key = "sampleText"
	KeySampleLink    Key = "sampleLink"
)

// Reading and time
const (
	KeyReadingTime       Key = "readingTime"
	KeyReadingTimePrefix Key = "readingTimePrefix"
	KeyReadingTimeSuffix Key = "readingTimeSuffix"
	KeyYearsWriting      Key = "yearsWriting"
)

// Actions, sharing, states and the 404 page
const (
	KeyBackToHome              Key = "backToHome"
	KeyBackToBlog              Key = "backToBlog"
	KeyGoHome                  Key = "goHome"
	KeyShare                   Key = "share"
	KeySharePost               Key = "sharePost"
	KeyTableOfContents         Key = "tableOfContents"
	KeyEmptyStateTitle         Key = "emptyStateTitle"
	KeyEmptyStateText          Key = "emptyStateText"
	KeyPageNotFoundTitle       Key = "pageNotFoundTitle"
	KeyPageNotFoundDescription Key = "pageNotFoundDescription"
	KeyHelpfulLinks            Key = "helpfulLinks"
)

var tables = map[Language]map[Key]string{
	English: {
		KeyHome:  "Home",
		KeyBlog:  "Blog",
		KeyAbout: "About",

		KeyPosts:        "Posts",
		KeyTags:         "Tags",
		KeyReadMore:     "Read More",
		KeyReadMyPosts:  "Read My Posts",
		KeyViewAllPosts: "View All Posts",
		KeyLatestPosts:  "Latest Posts",
		KeyUpdated:      "Updated",

		KeyGithub:         "GitHub",
		KeyTwitter:        "Twitter",
		KeyEmail:          "Email",
		KeyRSSFeed:        "RSS Feed",
		KeyShareOnTwitter: "Share on Twitter",
		KeyCopyLink:       "Copy Link",

		KeyAriaGithub:       "GitHub",
		KeyAriaTwitter:      "Twitter",
		KeyAriaEmail:        "Email",
		KeyAriaRSSFeed:      "RSS Feed",
		KeyAriaShareTwitter: "Share on Twitter",
		KeyAriaCopyLink:     "Copy Link",

		KeySampleHeading: "Sample Heading",
		KeySampleText:    "This is a sample paragraph to show how content looks with this theme.",
		KeySampleLink:    "Sample Link",

		KeyReadingTime:       "min read",
		KeyReadingTimePrefix: "",
		KeyReadingTimeSuffix: "min read",
		KeyYearsWriting:      "Years<br />Writing",

		KeyBackToHome:              "Back to Home",
		KeyBackToBlog:              "Back to Blog",
		KeyGoHome:                  "Go Home",
		KeyShare:                   "Share",
		KeySharePost:               "Share this post",
		KeyTableOfContents:         "Table of Contents",
		KeyEmptyStateTitle:         "No posts yet",
		KeyEmptyStateText:          "Check back soon for new content!",
		KeyPageNotFoundTitle:       "Page Not Found",
		KeyPageNotFoundDescription: "The page you're looking for seems to have drifted away into the digital ether. Let's help you find your way back to solid ground.",
		KeyHelpfulLinks:            "Maybe you're looking for",
	},
	Chinese: {
		KeyHome:  "首页",
		KeyBlog:  "博客",
		KeyAbout: "关于",

		KeyPosts:        "篇文章",
		KeyTags:         "标签",
		KeyReadMore:     "阅读更多",
		KeyReadMyPosts:  "阅读我的文章",
		KeyViewAllPosts: "查看所有文章",
		KeyLatestPosts:  "最新文章",
		KeyUpdated:      "更新于",

		KeyGithub:         "GitHub",
		KeyTwitter:        "Twitter",
		KeyEmail:          "邮箱",
		KeyRSSFeed:        "RSS 订阅",
		KeyShareOnTwitter: "分享到 Twitter",
		KeyCopyLink:       "复制链接",

		KeyAriaGithub:       "GitHub",
		KeyAriaTwitter:      "Twitter",
		KeyAriaEmail:        "邮箱",
		KeyAriaRSSFeed:      "RSS 订阅",
		KeyAriaShareTwitter: "分享到 Twitter",
		KeyAriaCopyLink:     "复制链接",

		KeySampleHeading: "示例标题",
		KeySampleText:    "这是一个示例段落，展示此主题下内容的显示效果。",
		KeySampleLink:    "示例链接",

		KeyReadingTime:       "分钟阅读",
		KeyReadingTimePrefix: "约",
		KeyReadingTimeSuffix: "分钟阅读",
		KeyYearsWriting:      "年写作",

		KeyBackToHome:              "返回首页",
		KeyBackToBlog:              "返回博客",
		KeyGoHome:                  "返回首页",
		KeyShare:                   "分享",
		KeySharePost:               "分享这篇文章",
		KeyTableOfContents:         "目录",
		KeyEmptyStateTitle:         "暂无文章",
		KeyEmptyStateText:          "请稍后查看新内容！",
		KeyPageNotFoundTitle:       "页面未找到",
		KeyPageNotFoundDescription: "您寻找的页面似乎已经消失在数字虚空中。让我们帮您找到回到安全地带的路。",
		KeyHelpfulLinks:            "也许你在寻找",
	},
}
