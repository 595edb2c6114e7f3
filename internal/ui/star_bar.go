package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/book-tracker/internal/model"
)

// StarBar renders a rating as a fixed row of lit and unlit stars
type StarBar struct {
	widget.BaseWidget

	rating float64
	stars  []*canvas.Text
}

// NewStarBar creates a star bar showing rating
func NewStarBar(rating float64) *StarBar {
	sb := &StarBar{rating: rating}
	sb.stars = make([]*canvas.Text, model.MaxStars)
	for i := range sb.stars {
		star := canvas.NewText(IconStarUnlit, theme.Color(theme.ColorNameDisabled))
		star.TextSize = StarSize
		sb.stars[i] = star
	}
	sb.ExtendBaseWidget(sb)
	sb.paint()
	return sb
}

// SetRating updates the shown rating
func (sb *StarBar) SetRating(rating float64) {
	sb.rating = rating
	sb.paint()
	sb.Refresh()
}

// Lit returns how many stars are lit
func (sb *StarBar) Lit() int {
	return model.LitStars(sb.rating)
}

func (sb *StarBar) paint() {
	lit := sb.Lit()
	for i, star := range sb.stars {
		if i < lit {
			star.Text = IconStarLit
			star.Color = starColor()
		} else {
			star.Text = IconStarUnlit
			star.Color = theme.Color(theme.ColorNameDisabled)
		}
	}
}

// CreateRenderer creates the widget renderer
func (sb *StarBar) CreateRenderer() fyne.WidgetRenderer {
	objects := make([]fyne.CanvasObject, len(sb.stars))
	for i, star := range sb.stars {
		objects[i] = star
	}
	return &starBarRenderer{bar: sb, box: container.NewHBox(objects...)}
}

type starBarRenderer struct {
	bar *StarBar
	box *fyne.Container
}

func (r *starBarRenderer) Layout(size fyne.Size) {
	r.box.Resize(size)
}

func (r *starBarRenderer) MinSize() fyne.Size {
	return r.box.MinSize()
}

func (r *starBarRenderer) Refresh() {
	r.bar.paint()
	for _, star := range r.bar.stars {
		star.Refresh()
	}
}

func (r *starBarRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.box}
}

func (r *starBarRenderer) Destroy() {}
