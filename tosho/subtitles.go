package tosho

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sac-94/AniSubDl/filesystem"
	"github.com/Sac-94/AniSubDl/key"
	"github.com/Sac-94/AniSubDl/log"
	"github.com/Sac-94/AniSubDl/util"
	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/viper"
	"github.com/ulikunitz/xz"
)

// FetchSubtitles downloads and extracts every subtitle archive on the
// attachments listing for term whose link label equals the configured
// subtitle label. Archives are decompressed next to the videos in outputDir
// and removed afterwards unless configured otherwise. Per-file failures are
// logged and skipped; the returned slice holds the successfully extracted
// subtitle paths.
func (c *Client) FetchSubtitles(term, outputDir string) ([]string, error) {
	pageURL := c.searchURL(term, true)
	fmt.Printf("\nFetching subtitles from: %s\n", pageURL)

	doc, err := c.document(pageURL)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}

	if err := filesystem.API().MkdirAll(outputDir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	label := viper.GetString(key.SearchSubtitleLabel)

	var links []subtitleLink
	doc.Find("div.home_list_entry").Each(func(_ int, entry *goquery.Selection) {
		release := strings.TrimSpace(entry.Find("div.link a").First().Text())

		entry.Find("a").Each(func(_ int, link *goquery.Selection) {
			if strings.TrimSpace(link.Text()) != label {
				return
			}

			href, ok := link.Attr("href")
			if !ok {
				return
			}

			links = append(links, subtitleLink{release: release, href: c.resolveURL(href)})
		})
	})

	if len(links) == 0 {
		fmt.Printf("No %q links found on the page.\n", label)
		return nil, nil
	}

	fmt.Printf("Found %s. Downloading...\n", util.Quantify(len(links), "subtitle file", "subtitle files"))

	var extracted []string
	for _, link := range links {
		path, err := c.download(link, outputDir)
		if err != nil {
			log.Errorf("download %s: %v", link.href, err)
			fmt.Printf("    Error: %v\n", err)
			continue
		}

		extracted = append(extracted, path)
	}

	fmt.Println("\nSubtitle download and extraction complete.")
	return extracted, nil
}

// subtitleLink is a downloadable subtitle archive and its release name.
type subtitleLink struct {
	release string
	href    string
}

// download retrieves a single subtitle archive and decompresses it in place.
// The final subtitle filename derives from the release name, its extension
// replaced by .ass.
func (c *Client) download(link subtitleLink, outputDir string) (string, error) {
	base := util.FileStem(link.release)
	archivePath := filepath.Join(outputDir, base+".ass.xz")
	subtitlePath := filepath.Join(outputDir, base+".ass")

	fmt.Printf("  -> Downloading %s...\n", filepath.Base(archivePath))

	body, status, err := c.fetch(link.href)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("unexpected status %d", status)
	}

	if err := filesystem.API().WriteFile(archivePath, body, 0644); err != nil {
		return "", err
	}

	fmt.Printf("  -> Extracting to %s...\n", filepath.Base(subtitlePath))

	if err := extract(archivePath, subtitlePath); err != nil {
		return "", err
	}

	if !viper.GetBool(key.DownloadKeepArchives) {
		if err := filesystem.API().Remove(archivePath); err != nil {
			log.Warnf("remove archive %q: %v", archivePath, err)
		}
	}

	return subtitlePath, nil
}

// extract decompresses an xz archive into the destination file.
func extract(archivePath, destPath string) error {
	archive, err := filesystem.API().Open(archivePath)
	if err != nil {
		return err
	}
	defer archive.Close()

	reader, err := xz.NewReader(archive)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}

	dest, err := filesystem.API().Create(destPath)
	if err != nil {
		return err
	}
	defer dest.Close()

	if _, err := io.Copy(dest, reader); err != nil {
		return fmt.Errorf("extract archive: %w", err)
	}

	return nil
}
