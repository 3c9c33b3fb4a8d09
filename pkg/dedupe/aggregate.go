package dedupe

// Member is one record of a duplicate group paired with its page URL and
// pageview count. A missing pageview count is zero.
type Member[T any] struct {
	URL       string
	Pageviews int
	Data      T
}

// Aggregate collapses a group into its most viewed member. The result keeps
// that member's URL and data and carries the total pageviews of the group.
// Ties go to the member that comes first. An empty group yields the zero Member.
func Aggregate[T any](group []Member[T]) Member[T] {
	if len(group) == 0 {
		return Member[T]{}
	}

	base := 0
	total := 0
	for i, m := range group {
		total += m.Pageviews
		if m.Pageviews > group[base].Pageviews {
			base = i
		}
	}

	merged := group[base]
	merged.Pageviews = total
	return merged
}

// Dropped returns the URLs of the members Aggregate did not keep, in input order.
func Dropped[T any](group []Member[T], kept Member[T]) []string {
	urls := make([]string, 0, len(group))
	skipped := false
	for _, m := range group {
		if !skipped && m.URL == kept.URL {
			skipped = true
			continue
		}
		urls = append(urls, m.URL)
	}
	return urls
}
