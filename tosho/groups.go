package tosho

import (
	"strings"

	"github.com/Sac-94/AniSubDl/log"
	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// ReleaseGroups searches the index for a title and collects the bracketed
// group tag of every result entry. The returned slice is deduplicated and
// sorted lexicographically; entries without a leading bracket contribute
// nothing. An empty slice is a valid "no groups found" outcome.
func (c *Client) ReleaseGroups(title string) ([]string, error) {
	log.Infof("searching release groups for %q", title)

	doc, err := c.document(c.searchURL(title, false))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	var groups []string
	doc.Find("div.home_list_entry").Each(func(_ int, entry *goquery.Selection) {
		release := strings.TrimSpace(entry.Find("div.link a").First().Text())
		if group, ok := groupOf(release); ok {
			groups = append(groups, group)
		}
	})

	groups = lo.Uniq(groups)
	slices.Sort(groups)

	log.Infof("found %d release groups for %q", len(groups), title)
	return groups, nil
}

// groupOf extracts the release group from a bracketed release name prefix,
// e.g. "[GroupName] Episode Title" yields "GroupName".
func groupOf(release string) (string, bool) {
	if !strings.HasPrefix(release, "[") {
		return "", false
	}

	end := strings.Index(release, "]")
	if end < 0 {
		return "", false
	}

	return release[1:end], true
}
