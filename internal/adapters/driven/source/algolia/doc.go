// Package algolia implements driven.ItemSource against the Hacker News
// search API hosted by Algolia.
//
// A search issues GET {endpoint}?query={term}&hitsPerPage={n} and decodes
// the hits array into domain items in arrival order. Requests are
// throttled client-side with a token bucket.
package algolia
