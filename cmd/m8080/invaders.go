package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jmchacon/i8080/invaders"
)

func newInvadersCmd() *cobra.Command {
	var scale int
	var credits int

	cmd := &cobra.Command{
		Use:   "invaders <rom>",
		Short: "Run a Space Invaders ROM image (h+g+f+e banks concatenated)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("can't open %s: %w", args[0], err)
			}
			m, err := invaders.New(rom)
			if err != nil {
				return err
			}
			runInvadersWindow(m, scale, credits)
			return nil
		},
	}
	cmd.Flags().IntVar(&scale, "scale", 2, "Window scale factor")
	cmd.Flags().IntVar(&credits, "credits", 0, "Credits to display on the HUD overlay")
	return cmd
}

// runInvadersWindow owns SDL's main-thread requirements: every SDL call
// happens inside sdl.Main/sdl.Do, which keeps window/event calls pinned to
// the thread SDL was initialized on.
func runInvadersWindow(m *invaders.Machine, scale, credits int) {
	sdl.Main(func() {
		var window *sdl.Window
		var surface *sdl.Surface

		sdl.Do(func() {
			if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
				log.Fatalf("can't init SDL: %v", err)
			}
			w, err := sdl.CreateWindow("m8080 invaders", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
				int32(224*scale), int32(256*scale), sdl.WINDOW_SHOWN)
			if err != nil {
				log.Fatalf("can't create window: %v", err)
			}
			window = w
			surface, err = window.GetSurface()
			if err != nil {
				log.Fatalf("can't get window surface: %v", err)
			}
		})
		defer sdl.Do(func() {
			window.Destroy()
			sdl.Quit()
		})

		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()

		quit := false
		for !quit {
			sdl.Do(func() {
				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					switch e := event.(type) {
					case *sdl.QuitEvent:
						quit = true
					case *sdl.KeyboardEvent:
						handleKey(m, e)
					}
				}
			})
			if quit {
				break
			}

			<-ticker.C
			m.RunFrame()

			sdl.Do(func() {
				img := m.Framebuffer()
				invaders.DrawHUD(img, credits, m.CPU.Cycles)
				blit(img, surface, scale)
				window.UpdateSurface()
			})
		}
	})
}

func handleKey(m *invaders.Machine, e *sdl.KeyboardEvent) {
	down := e.State == sdl.PRESSED
	switch e.Keysym.Scancode {
	case sdl.SCANCODE_C:
		m.In1.Set(invaders.ButtonCoin, down)
	case sdl.SCANCODE_RETURN:
		m.In1.Set(invaders.ButtonP1Start, down)
	case sdl.SCANCODE_SPACE:
		m.In1.Set(invaders.ButtonP1Shoot, down)
	case sdl.SCANCODE_LEFT:
		m.In1.Set(invaders.ButtonP1Left, down)
	case sdl.SCANCODE_RIGHT:
		m.In1.Set(invaders.ButtonP1Right, down)
	}
}
