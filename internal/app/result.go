package app

import (
	"strings"

	"swayn-kiosk/internal/domain"
)

// anonymousName addresses visitors who skipped the name prompt.
const anonymousName = "당신"

// ResultView is the display-ready result page.
type ResultView struct {
	Category       domain.Category  `json:"category"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Line           string           `json:"line"`
	Sensitivity    int              `json:"sensitivity"`
	LuckyItem      domain.Product   `json:"luckyItem"`
	Products       []domain.Product `json:"products"`
	Images         []string         `json:"images"`
	CharacterImage string           `json:"characterImage"`
	Traits         []domain.Trait   `json:"traits"`
	UserName       string           `json:"userName"`
	DisplayName    string           `json:"displayName"`
	Share          ShareView        `json:"share"`
}

// ShareView is what the share sheet or clipboard fallback receives.
type ShareView struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Fallback string `json:"fallback"`
}

// AssembleResult joins a computed category with its static metadata.
func AssembleResult(catalog domain.Catalog, category domain.Category, userName string) ResultView {
	meta := catalog.ResultFor(category)

	display := userName
	if strings.TrimSpace(display) == "" {
		display = anonymousName
	}
	var lucky domain.Product
	if len(meta.Products) > 0 {
		lucky = meta.Products[0]
	}

	fill := strings.NewReplacer("{title}", meta.Title, "{line}", meta.Line)
	return ResultView{
		Category:       category,
		Title:          meta.Title,
		Description:    meta.Description,
		Line:           meta.Line,
		Sensitivity:    meta.Sensitivity,
		LuckyItem:      lucky,
		Products:       meta.Products,
		Images:         meta.Images,
		CharacterImage: meta.CharacterImage,
		Traits:         meta.Traits,
		UserName:       userName,
		DisplayName:    display,
		Share: ShareView{
			Title:    catalog.Share.Title,
			Text:     fill.Replace(catalog.Share.Text),
			Fallback: fill.Replace(catalog.Share.Fallback),
		},
	}
}
