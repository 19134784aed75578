package ui

import (
	"bytes"
	"image/color"

	"github.com/automoto/seed-hodl/components"
	cfg "github.com/automoto/seed-hodl/config"
	"github.com/automoto/seed-hodl/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	holdLabel     = "HOLD FOR EMERGENCY LIQUIDATION (3s)"
	confirmLabel  = "CONFIRM LIQUIDATION (3s)"
	completeLabel = "LIQUIDITY LOCKED UNTIL v2"
	copyLabel     = "COPY PROOF OF STREAK"

	buttonHeight  = 28
	buttonSpacing = 6
	bottomPadding = 12
)

// StakingUI holds the ebitenui buttons laid over the staking card
type StakingUI struct {
	UI      *ebitenui.UI
	Staking *components.StakingData

	copyButton *widget.Button
	holdButton *widget.Button

	// armedAtPress is true when the current press began on an armed button.
	// Only such a press may confirm, so the press that arms never liquidates.
	armedAtPress bool

	buttonFace text.Face
}

// NewStakingUI builds the card buttons for the given streak
func NewStakingUI(staking *components.StakingData) *StakingUI {
	sui := &StakingUI{Staking: staking}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *StakingUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		panic(err)
	}
	sui.buttonFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
}

func (sui *StakingUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	// Centered over the card drawn by the HUD; the spacer pushes the
	// buttons down to the card's lower edge.
	cardContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: bottomPadding}),
			widget.RowLayoutOpts.Spacing(buttonSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	buttonWidth := int(cfg.HUD.CardWidth) - 48
	spacerHeight := int(cfg.HUD.CardHeight) - 2*buttonHeight - 2*buttonSpacing - bottomPadding
	cardContainer.AddChild(widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(buttonWidth, spacerHeight)),
	))

	sui.copyButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(buttonWidth, buttonHeight)),
		widget.ButtonOpts.Image(sui.copyButtonImage()),
		widget.ButtonOpts.Text(copyLabel, &sui.buttonFace, &widget.ButtonTextColor{
			Idle:    cfg.Sky,
			Hover:   cfg.White,
			Pressed: cfg.Cyan,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			sui.Staking.CopyRequested = true
		}),
	)
	cardContainer.AddChild(sui.copyButton)

	sui.holdButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(buttonWidth, buttonHeight)),
		widget.ButtonOpts.Image(sui.holdButtonImage()),
		widget.ButtonOpts.Text(holdLabel, &sui.buttonFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{248, 113, 113, 255},
			Hover:    cfg.White,
			Pressed:  cfg.White,
			Disabled: cfg.DarkSlate,
		}),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			sui.armedAtPress = sui.Staking.ConfirmArmed
			sui.Staking.PointerHeld = true
		}),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) {
			sui.Staking.PointerHeld = false
		}),
		widget.ButtonOpts.CursorExitedHandler(func(args *widget.ButtonHoverEventArgs) {
			sui.Staking.PointerHeld = false
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.armedAtPress {
				systems.RequestLiquidation(sui.Staking)
			}
			sui.armedAtPress = false
		}),
	)
	cardContainer.AddChild(sui.holdButton)

	rootContainer.AddChild(cardContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (sui *StakingUI) copyButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.RGBA{8, 47, 73, 200}),
		Hover:   image.NewNineSliceColor(color.RGBA{12, 74, 110, 220}),
		Pressed: image.NewNineSliceColor(color.RGBA{7, 89, 133, 255}),
	}
}

func (sui *StakingUI) holdButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{69, 10, 10, 200}),
		Hover:    image.NewNineSliceColor(color.RGBA{127, 29, 29, 220}),
		Pressed:  image.NewNineSliceColor(color.RGBA{153, 27, 27, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{30, 41, 59, 200}),
	}
}

// UpdateUI syncs button labels and state with the streak
func (sui *StakingUI) UpdateUI() {
	s := sui.Staking
	switch {
	case s.Phase == cfg.PhaseComplete:
		sui.holdButton.SetText(completeLabel)
	case s.ConfirmArmed:
		sui.holdButton.SetText(confirmLabel)
	default:
		sui.holdButton.SetText(holdLabel)
	}
	sui.holdButton.GetWidget().Disabled = s.Phase != cfg.PhaseStaking
}

// Visible reports whether the card buttons should be shown. They are
// hidden while the void plays.
func (sui *StakingUI) Visible() bool {
	return sui.Staking.Phase != cfg.PhaseVoid
}

// Update runs the UI for one frame
func (sui *StakingUI) Update() {
	if !sui.Visible() {
		sui.Staking.PointerHeld = false
		sui.armedAtPress = false
		return
	}
	sui.UI.Update()
	sui.UpdateUI()
}

func (sui *StakingUI) Draw(screen *ebiten.Image) {
	if !sui.Visible() {
		return
	}
	sui.UI.Draw(screen)
}
