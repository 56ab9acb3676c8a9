package feeds

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Namespaces the parser has to care about. Feeds in the wild also use the
// bare prefix without declaring it, so lookups accept both forms.
const (
	nsAtom    = "http://www.w3.org/2005/Atom"
	nsITunes  = "http://www.itunes.com/dtds/podcast-1.0.dtd"
	nsMedia   = "http://search.yahoo.com/mrss/"
	nsContent = "http://purl.org/rss/1.0/modules/content/"
)

var imgSrcPattern = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["']`)

// xmlNode is a generic typed XML tree. The fallback chains below walk it
// explicitly instead of querying a dynamic DOM.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []xmlNode  `xml:",any"`
}

func (n *xmlNode) attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// nsChild returns the first child with the given local name whose namespace
// matches the canonical URI or the bare (undeclared) prefix.
func nsChild(n *xmlNode, local, uri, prefix string) *xmlNode {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == local && (c.XMLName.Space == uri || c.XMLName.Space == prefix) {
			return c
		}
	}
	return nil
}

func nsChildren(n *xmlNode, local, uri, prefix string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local == local && (c.XMLName.Space == uri || c.XMLName.Space == prefix) {
			out = append(out, c)
		}
	}
	return out
}

// findFirst does a depth-first search for an element by local name,
// ignoring namespaces. Used only for dialect detection.
func findFirst(n *xmlNode, local string) *xmlNode {
	if n.XMLName.Local == local {
		return n
	}
	for i := range n.Children {
		if found := findFirst(&n.Children[i], local); found != nil {
			return found
		}
	}
	return nil
}

// Parser converts raw feed text into the normalized Podcast model. It is
// stateless and safe for concurrent use.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse interprets rawText as an RSS 2.0 or Atom document.
func (p *Parser) Parse(rawText string) (*Podcast, error) {
	trimmed := strings.TrimSpace(rawText)
	if trimmed == "" {
		return nil, &ParseError{Reason: "empty document"}
	}

	root, err := decodeTree(trimmed)
	if err != nil {
		// A structural error on a document whose root is <html> is the
		// common "redirected to a login or error page" case.
		if rootLocalName(trimmed) == "html" {
			return nil, newHTMLParseError()
		}
		return nil, &ParseError{Reason: "malformed xml", Cause: err}
	}
	if strings.EqualFold(root.XMLName.Local, "html") {
		return nil, newHTMLParseError()
	}

	channel := findFirst(root, "channel")
	isAtom := false
	if channel == nil {
		feed := findFirst(root, "feed")
		if feed == nil {
			return nil, &ParseError{Reason: "no channel or feed element found"}
		}
		space := feed.XMLName.Space
		if space != "" && space != nsAtom && !strings.Contains(space, "atom") {
			return nil, &ParseError{Reason: "feed element is not atom"}
		}
		isAtom = true
		channel = feed
	}

	d := &dialect{atom: isAtom}
	return d.parseChannel(channel), nil
}

func decodeTree(text string) (*xmlNode, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	// Fetched text has already been decoded to UTF-8; accept whatever
	// charset the XML declaration claims.
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}
	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// rootLocalName sniffs the first start element with a lenient decoder so a
// half-broken HTML page still reveals its root tag.
func rootLocalName(text string) string {
	dec := xml.NewDecoder(strings.NewReader(text))
	dec.Strict = false
	dec.AutoClose = xml.HTMLAutoClose
	dec.Entity = xml.HTMLEntity
	for {
		tok, err := dec.Token()
		if err != nil {
			return ""
		}
		if start, ok := tok.(xml.StartElement); ok {
			return strings.ToLower(start.Name.Local)
		}
	}
}

// dialect holds which namespace plain-element lookups accept: RSS elements
// live in no namespace, Atom elements in the atom namespace. Extension
// elements (itunes:, media:, content:) never match a plain lookup, so an
// <atom:link> inside an RSS channel cannot shadow <link>.
type dialect struct {
	atom bool
}

func (d *dialect) el(n *xmlNode, local string) *xmlNode {
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local != local {
			continue
		}
		if c.XMLName.Space == "" || (d.atom && c.XMLName.Space == nsAtom) {
			return c
		}
	}
	return nil
}

func (d *dialect) els(n *xmlNode, local string) []*xmlNode {
	var out []*xmlNode
	for i := range n.Children {
		c := &n.Children[i]
		if c.XMLName.Local != local {
			continue
		}
		if c.XMLName.Space == "" || (d.atom && c.XMLName.Space == nsAtom) {
			out = append(out, c)
		}
	}
	return out
}

func (d *dialect) text(n *xmlNode, local string) string {
	if c := d.el(n, local); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

func (d *dialect) parseChannel(channel *xmlNode) *Podcast {
	title := d.text(channel, "title")

	var description string
	if d.atom {
		description = firstNonEmpty(
			d.text(channel, "subtitle"),
			d.text(channel, "summary"),
			d.text(channel, "content"),
		)
	} else {
		description = d.text(channel, "description")
	}

	link := d.channelLink(channel)
	image := d.channelImage(channel, description)

	author := firstNonEmpty(
		nsText(channel, "author", nsITunes, "itunes"),
		d.text(channel, "author"),
		d.text(channel, "managingEditor"),
	)
	language := d.text(channel, "language")

	itemName := "item"
	if d.atom {
		itemName = "entry"
	}
	items := d.els(channel, itemName)

	episodes := make([]Episode, 0, len(items))
	for i, item := range items {
		episodes = append(episodes, d.parseItem(item, i, link, image))
	}

	return &Podcast{
		Title:       title,
		Description: description,
		Link:        link,
		Image:       image,
		Author:      author,
		Language:    language,
		Episodes:    episodes,
	}
}

// channelLink handles the Atom self-closing <link href=.../> form and the
// plain RSS text form.
func (d *dialect) channelLink(channel *xmlNode) string {
	if d.atom {
		if el := d.el(channel, "link"); el != nil {
			if href := el.attr("href"); href != "" {
				return href
			}
			return strings.TrimSpace(el.Text)
		}
		return ""
	}
	return d.text(channel, "link")
}

// channelImage tries nine sources in priority order; the first non-empty
// match wins and absence of all of them yields "".
func (d *dialect) channelImage(channel *xmlNode, description string) string {
	// 1. itunes:image, usually the best quality
	if el := nsChild(channel, "image", nsITunes, "itunes"); el != nil {
		if v := strings.TrimSpace(firstNonEmpty(el.attr("href"), el.Text)); v != "" {
			return v
		}
	}

	// 2-3. RSS <image><url> text, then the url attribute form
	if img := d.el(channel, "image"); img != nil {
		if v := d.text(img, "url"); v != "" {
			return v
		}
		if v := strings.TrimSpace(img.attr("url")); v != "" {
			return v
		}
	}

	// 4-5. Atom logo, then icon
	if d.atom {
		if v := d.text(channel, "logo"); v != "" {
			return v
		}
		if v := d.text(channel, "icon"); v != "" {
			return v
		}
	}

	// 6-8. Some feeds only carry artwork on items; look at the first one.
	itemName := "item"
	if d.atom {
		itemName = "entry"
	}
	if first := d.el(channel, itemName); first != nil {
		if v := itemExtensionImage(first); v != "" {
			return v
		}
	}

	// 9. Last resort: an <img src=...> embedded in the description HTML.
	if m := imgSrcPattern.FindStringSubmatch(description); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}

// itemExtensionImage checks the item-level artwork extensions in priority
// order: itunes:image, media:thumbnail, media:content[medium=image].
func itemExtensionImage(item *xmlNode) string {
	if el := nsChild(item, "image", nsITunes, "itunes"); el != nil {
		if v := strings.TrimSpace(firstNonEmpty(el.attr("href"), el.Text)); v != "" {
			return v
		}
	}
	if el := nsChild(item, "thumbnail", nsMedia, "media"); el != nil {
		if v := el.attr("url"); v != "" {
			return v
		}
	}
	for _, el := range nsChildren(item, "content", nsMedia, "media") {
		if el.attr("medium") == "image" {
			if v := el.attr("url"); v != "" {
				return v
			}
		}
	}
	return ""
}

func (d *dialect) parseItem(item *xmlNode, index int, feedLink, feedImage string) Episode {
	title := d.text(item, "title")

	var description string
	if d.atom {
		description = firstNonEmpty(d.text(item, "summary"), d.text(item, "content"))
	} else {
		description = firstNonEmpty(
			d.text(item, "description"),
			nsText(item, "encoded", nsContent, "content"),
		)
	}

	var link string
	if d.atom {
		if el := d.el(item, "link"); el != nil {
			link = firstNonEmpty(el.attr("href"), strings.TrimSpace(el.Text))
		}
	} else {
		link = d.text(item, "link")
	}

	idSource := "guid"
	if d.atom {
		idSource = "id"
	}
	id := firstNonEmpty(d.text(item, idSource), link, fmt.Sprintf("%s-%d", feedLink, index))

	var pubDateRaw string
	if d.atom {
		pubDateRaw = firstNonEmpty(d.text(item, "published"), d.text(item, "updated"))
	} else {
		pubDateRaw = d.text(item, "pubDate")
	}
	var pubDate *int64
	if ts, ok := parseTime(pubDateRaw); ok {
		pubDate = &ts
	}

	var audioURL string
	if d.atom {
		for _, el := range d.els(item, "link") {
			if strings.HasPrefix(el.attr("type"), "audio/") {
				audioURL = el.attr("href")
				break
			}
		}
	} else {
		if el := d.el(item, "enclosure"); el != nil {
			audioURL = el.attr("url")
		}
	}

	duration := ParseDuration(nsText(item, "duration", nsITunes, "itunes"))

	image := itemExtensionImage(item)
	if image == "" {
		image = feedImage
	}

	return Episode{
		ID:          id,
		Title:       title,
		Description: description,
		PubDate:     pubDate,
		Duration:    duration,
		AudioURL:    audioURL,
		Image:       image,
		Link:        link,
	}
}

func nsText(n *xmlNode, local, uri, prefix string) string {
	if c := nsChild(n, local, uri, prefix); c != nil {
		return strings.TrimSpace(c.Text)
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// pubDateLayouts covers the date formats podcast feeds actually publish:
// RFC 822/1123 variants for RSS, RFC 3339 for Atom, plus a few sloppy ones.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC822Z,
	time.RFC822,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(value string) (int64, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Unix(), true
		}
	}
	return 0, false
}

// ParseDuration parses an itunes:duration string ("H:MM:SS", "MM:SS" or
// plain seconds) right to left. Unparseable components contribute zero; an
// unparseable or empty string yields 0.
func ParseDuration(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	parts := strings.Split(value, ":")
	// reverse so parts[0] is seconds, parts[1] minutes, parts[2] hours
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}

	multipliers := []float64{1, 60, 3600}
	var total float64
	for i := 0; i < len(parts) && i < len(multipliers); i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			continue
		}
		total += v * multipliers[i]
	}

	if total < 0 {
		return 0
	}
	return int(total)
}
