package sources

// SiteConfig describes one scraped UK legal site. SearchURL is a template
// whose single %s placeholder receives the URL-encoded query.
type SiteConfig struct {
	Key             string `json:"key"`
	BaseURL         string `json:"base_url"`
	SearchURL       string `json:"search_url"`
	ContentSelector string `json:"content_selector"`
}

// FeedConfig describes one legislation syndication feed.
type FeedConfig struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Sites lists the scraped legal sources. The set is fixed at process start
// and never mutated at runtime.
var Sites = []SiteConfig{
	{
		Key:             "gov.uk",
		BaseURL:         "https://www.gov.uk",
		SearchURL:       "https://www.gov.uk/search/all?keywords=%s&order=relevance",
		ContentSelector: ".gem-c-document-list__item-title, .gem-c-document-list__item-description",
	},
	{
		Key:             "legislation.gov.uk",
		BaseURL:         "https://www.legislation.gov.uk",
		SearchURL:       "https://www.legislation.gov.uk/search?text=%s",
		ContentSelector: ".searchresult h3, .searchresult p",
	},
	{
		Key:             "bailii.org",
		BaseURL:         "https://www.bailii.org",
		SearchURL:       "https://www.bailii.org/cgi-bin/lucy_search_1.cgi?query=%s",
		ContentSelector: "h3 a, .case-summary",
	},
	{
		Key:             "lawsociety.org.uk",
		BaseURL:         "https://www.lawsociety.org.uk",
		SearchURL:       "https://www.lawsociety.org.uk/search?q=%s",
		ContentSelector: ".search-result h3, .search-result-summary",
	},
	{
		Key:             "citizensadvice.org.uk",
		BaseURL:         "https://www.citizensadvice.org.uk",
		SearchURL:       "https://www.citizensadvice.org.uk/search/?q=%s",
		ContentSelector: ".search-result__title, .search-result__summary",
	},
}

// Feeds maps feed keys to legislation.gov.uk Atom feeds publishing newly
// enacted legislation.
var Feeds = map[string]FeedConfig{
	"all_legislation": {
		Key:         "all_legislation",
		URL:         "https://www.legislation.gov.uk/new/data.feed",
		Description: "All UK Legislation",
	},
	"uk_public_general_acts": {
		Key:         "uk_public_general_acts",
		URL:         "https://www.legislation.gov.uk/new/ukpga/data.feed",
		Description: "UK Public General Acts",
	},
	"uk_ministerial_directions": {
		Key:         "uk_ministerial_directions",
		URL:         "https://www.legislation.gov.uk/new/ukmd/data.feed",
		Description: "UK Ministerial Directions",
	},
	"northern_ireland_acts": {
		Key:         "northern_ireland_acts",
		URL:         "https://www.legislation.gov.uk/new/nia/data.feed",
		Description: "Northern Ireland Acts",
	},
	"northern_ireland_orders": {
		Key:         "northern_ireland_orders",
		URL:         "https://www.legislation.gov.uk/new/nisi/data.feed",
		Description: "Northern Ireland Orders in Council",
	},
	"northern_ireland_statutory_rules": {
		Key:         "northern_ireland_statutory_rules",
		URL:         "https://www.legislation.gov.uk/new/nisr/data.feed",
		Description: "Northern Ireland Statutory Rules",
	},
	"scotland_acts": {
		Key:         "scotland_acts",
		URL:         "https://www.legislation.gov.uk/new/asp/data.feed",
		Description: "Acts of the Scottish Parliament",
	},
	"scotland_statutory_instruments": {
		Key:         "scotland_statutory_instruments",
		URL:         "https://www.legislation.gov.uk/new/ssi/data.feed",
		Description: "Scottish Statutory Instruments",
	},
	"wales_acts": {
		Key:         "wales_acts",
		URL:         "https://www.legislation.gov.uk/new/asc/data.feed",
		Description: "Acts of Senedd Cymru",
	},
	"wales_statutory_instruments": {
		Key:         "wales_statutory_instruments",
		URL:         "https://www.legislation.gov.uk/new/wsi/data.feed",
		Description: "Welsh Statutory Instruments",
	},
}
