package autoria

import "fmt"

// By tells the browser how to interpret a Selector value
type By int

const (
	ByQuery  By = iota // CSS selector
	ByID               // element id
	ByXPath            // XPath expression
)

// Selector locates an element on the auto.ria page
type Selector struct {
	Value string
	By    By
}

func css(v string) Selector   { return Selector{Value: v, By: ByQuery} }
func id(v string) Selector    { return Selector{Value: v, By: ByID} }
func xpath(v string) Selector { return Selector{Value: v, By: ByXPath} }

// Search form. These mirror the live auto.ria markup and break silently when it changes.
var (
	TransportTypeInput = css(".e-form")

	BrandInput      = id("brandTooltipBrandAutocompleteInput-brand")
	BrandSuggestion = xpath("//*[@id='brandTooltipBrandAutocomplete-brand']/ul/li/a")

	ModelInput      = id("brandTooltipBrandAutocompleteInput-model")
	ModelSuggestion = xpath("//*[@id='brandTooltipBrandAutocomplete-model']/ul/li/a")

	RegionInput      = id("brandTooltipBrandAutocompleteInput-region")
	RegionSuggestion = xpath("//*[@id='brandTooltipBrandAutocomplete-region']/ul/li/a")

	YearPanelToggle = css(".wrap-pseudoelement")
	YearFromInput   = id("yearFrom")
	YearToInput     = id("yearTo")

	PricePanelToggle = xpath("//*[@id='mainSearchForm']/div[2]/div[2]/div[3]")
	PriceFromInput   = id("priceFrom")
	PriceToInput     = id("priceTo")

	SubmitButton = xpath("//*[@id='mainSearchForm']/div[3]/button")
)

// Results and detail pages. Row sub-selectors are CSS so they can be scoped to a row node.
var (
	ResultRow         = css("section.ticket-item")
	RowTitle          = css(".head-ticket")
	RowDescription    = css(".descriptions-ticket")
	PhoneRevealButton = css(".phones_item")
	PhonePopup        = css(".popup-successful-call-desk")
)

// NextPageLink points at the pagination link for the zero-based results page n
func NextPageLink(n int) Selector {
	return css(fmt.Sprintf("a.page-link[data-page='%d']", n))
}
