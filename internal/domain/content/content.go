// Package content groups the editorial entities: magazine articles and their
// comments, news items, testimonials and the model forum.
package content

type Article struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	ImageURL    string   `json:"imageUrl"`
	Author      string   `json:"author"`
	Tags        []string `json:"tags"`
	IsFeatured  bool     `json:"isFeatured"`
	PublishedAt string   `json:"publishedAt"`
}

type ArticleComment struct {
	ID          string `json:"id"`
	ArticleSlug string `json:"articleSlug"`
	Author      string `json:"author"`
	Body        string `json:"body"`
	CreatedAt   string `json:"createdAt"`
}

type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	ImageURL string `json:"imageUrl"`
	Date     string `json:"date"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Author   string `json:"author"`
	Role     string `json:"role"`
	Quote    string `json:"quote"`
	ImageURL string `json:"imageUrl"`
}

type ForumThread struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}

type ForumReply struct {
	ID        string `json:"id"`
	ThreadID  string `json:"threadId"`
	Author    string `json:"author"`
	Body      string `json:"body"`
	CreatedAt string `json:"createdAt"`
}
