// Package github implements driven.ItemSource against the GitHub issue
// search API.
//
// Each issue or pull request becomes one item: the title, the HTML link,
// the author's login, the comment count and the total reaction count as
// points. The object ID is the numeric issue ID. Requests go through
// go-github with an optional static token and are throttled by a dual
// strategy rate limiter (token bucket plus the X-RateLimit headers).
package github
