//go:build ebiten

package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"pong/internal/screen"
)

var actionKeys = map[screen.Action][]ebiten.Key{
	screen.ActionUp:            {ebiten.KeyArrowUp, ebiten.KeyW},
	screen.ActionDown:          {ebiten.KeyArrowDown, ebiten.KeyS},
	screen.ActionSelect:        {ebiten.KeyEnter, ebiten.KeySpace},
	screen.ActionBack:          {ebiten.KeyEscape},
	screen.ActionPause:         {ebiten.KeyP},
	screen.ActionToggleHUD:     {ebiten.KeyH},
	screen.ActionToggleOverlay: {ebiten.KeyO},
}

var actionButtons = map[screen.Action][]ebiten.StandardGamepadButton{
	screen.ActionUp:     {ebiten.StandardGamepadButtonLeftTop},
	screen.ActionDown:   {ebiten.StandardGamepadButtonLeftBottom},
	screen.ActionSelect: {ebiten.StandardGamepadButtonRightBottom},
	screen.ActionBack:   {ebiten.StandardGamepadButtonRightRight},
	screen.ActionPause:  {ebiten.StandardGamepadButtonCenterRight},
}

// Keyboard reads the keyboard and the first standard gamepad. It satisfies
// screen.Input.
type Keyboard struct {
	gamepads []ebiten.GamepadID
}

func NewKeyboard() *Keyboard { return &Keyboard{} }

func (k *Keyboard) pad() (ebiten.GamepadID, bool) {
	k.gamepads = ebiten.AppendGamepadIDs(k.gamepads[:0])
	for _, id := range k.gamepads {
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			return id, true
		}
	}
	return 0, false
}

// Vertical is +1 while Up/W is held, -1 while Down/S is held, otherwise the
// gamepad's left stick.
func (k *Keyboard) Vertical() float64 {
	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	down := ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS)
	stick := 0.0
	if id, ok := k.pad(); ok {
		stick = StickVertical(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical))
	}
	return Combine(up, down, stick)
}

// Pressed reports whether the action started this frame.
func (k *Keyboard) Pressed(a screen.Action) bool {
	for _, key := range actionKeys[a] {
		if inpututil.IsKeyJustPressed(key) {
			return true
		}
	}
	id, ok := k.pad()
	if !ok {
		return false
	}
	for _, b := range actionButtons[a] {
		if inpututil.IsStandardGamepadButtonJustPressed(id, b) {
			return true
		}
	}
	return false
}
