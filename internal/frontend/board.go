package frontend

import (
	"fmt"

	"github.com/janpfeifer/GoMemory/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Board is the game page: a Restart button and the board.
// It draws the last view received from the server and forwards clicks on
// eligible cards as flip requests.
type Board struct {
	app.Compo
	Game  *game.View
	Error string

	onUpdate func()
}

func (b *Board) OnMount(ctx app.Context) {
	klog.Infof("Board component: OnMount called")
	b.Game = State.Game
	b.Error = State.Error
	b.onUpdate = func() {
		ctx.Dispatch(func(ctx app.Context) {
			b.Game = State.Game
			b.Error = State.Error
		})
	}
	State.Listeners["board"] = b.onUpdate
}

func (b *Board) OnDismount() {
	klog.Infof("Board component: OnDismount called")
	delete(State.Listeners, "board")
}

func (b *Board) OnNav(ctx app.Context) {
	if app.IsServer {
		return
	}
	if State.Conn == nil {
		if err := State.ConnectWS(); err != nil {
			b.Error = fmt.Sprintf("Failed to connect to server: %v", err)
			klog.Errorf("Board component: Error connecting: %v", err)
		}
	}
}

func (b *Board) onRestart(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if State.Conn == nil {
		// Connection was lost: a new connection deals a new game.
		if err := State.ConnectWS(); err != nil {
			b.Error = fmt.Sprintf("Failed to connect to server: %v", err)
		}
		return
	}
	State.SendRestart()
}

func (b *Board) onBoardClick(ctx app.Context, e app.Event) {
	rect := ctx.JSSrc().Call("getBoundingClientRect")
	x := e.Get("clientX").Float() - rect.Get("left").Float()
	y := e.Get("clientY").Float() - rect.Get("top").Float()
	cardID, ok := PickCard(b.Game, State.Layout, x, y)
	if !ok {
		klog.V(1).Infof("Board component: click at (%.0f, %.0f) ignored", x, y)
		return
	}
	State.SendFlip(cardID)
}

func (b *Board) Render() app.UI {
	var status app.UI = app.Text("")
	switch {
	case b.Error != "":
		status = app.P().Style("color", "red").Text(b.Error)
	case b.Game == nil:
		status = app.P().Aria("busy", "true").Text("Dealing cards...")
	case b.Game.Complete:
		status = app.P().Class("ins").Text("All pairs found!")
	}

	width, height := State.Layout.BoardSize()
	return app.Main().Class("container").Body(
		app.Div().Body(
			app.H1().Text("Memory Matching Game"),
			app.Button().Text("Restart").OnClick(b.onRestart),
			app.Div().Style("height", "30px"),
		),
		status,
		app.Div().
			Class("board").
			Style("width", fmt.Sprintf("%gpx", width)).
			Style("height", fmt.Sprintf("%gpx", height)).
			Style("border", "1px solid #000").
			Style("cursor", "pointer").
			OnClick(b.onBoardClick).
			Body(
				app.Raw(RenderBoard(b.Game, State.Layout)),
			),
	)
}
