package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	mandel "github.com/marben/mandel_bmp"
	"github.com/marben/mandel_bmp/bmp"
	"github.com/marben/mandel_bmp/term"
)

func asciiCmd(a *app) *cobra.Command {
	var f sceneFlags
	var mode string

	c := &cobra.Command{
		Use:   "ascii",
		Short: "Print the set as text: '#' inside, shaded by escape rate outside",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := f.scene(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			switch mode {
			case "binary":
				img, err := sc.Binary()
				if err != nil {
					return err
				}
				if err := mandel.PrintBinary(cmd.OutOrStdout(), img); err != nil {
					return err
				}
			case "shade":
				img, err := sc.Normalized()
				if err != nil {
					return err
				}
				if err := mandel.PrintNormalized(cmd.OutOrStdout(), img); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown mode %q (binary|shade)", mode)
			}

			a.log.Debug("ascii.done", "mode", mode, "width", sc.Width, "iterations", sc.Iterations, "took", time.Since(start))
			return nil
		},
	}

	f.register(c, false)
	c.Flags().StringVarP(&mode, "mode", "m", "binary", "Text mode: binary|shade")
	return c
}

func bmpCmd(a *app) *cobra.Command {
	var f sceneFlags

	c := &cobra.Command{
		Use:   "bmp",
		Short: "Write a colored 24-bit BMP file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sc, err := f.scene(cmd)
			if err != nil {
				return err
			}

			start := time.Now()
			img, err := sc.Colored()
			if err != nil {
				return err
			}
			a.log.Debug("render.done", "width", len(img[0]), "height", len(img), "took", time.Since(start))

			if err := bmp.WriteFile(sc.Output, img); err != nil {
				return err
			}
			a.log.Info("bmp.written", "path", sc.Output+".bmp", "width", len(img[0]), "height", len(img))
			fmt.Fprintf(cmd.OutOrStdout(), "%s.bmp\n", sc.Output)
			return nil
		},
	}

	f.register(c, true)
	return c
}

func viewCmd(a *app) *cobra.Command {
	var f sceneFlags
	var mode string

	c := &cobra.Command{
		Use:   "view",
		Short: "Show the set in the terminal (q to quit)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if mode != "color" && mode != "binary" {
				return fmt.Errorf("unknown mode %q (color|binary)", mode)
			}
			sc, err := f.scene(cmd)
			if err != nil {
				return err
			}

			if mode == "binary" {
				img, err := sc.Binary()
				if err != nil {
					return err
				}
				a.log.Debug("view.open", "mode", mode, "width", len(img[0]), "height", len(img))
				return term.ShowBinary(cmd.Context(), img)
			}

			img, err := sc.Colored()
			if err != nil {
				return err
			}
			a.log.Debug("view.open", "mode", mode, "width", len(img[0]), "height", len(img))
			return term.Show(cmd.Context(), img)
		},
	}

	f.register(c, false)
	c.Flags().StringVarP(&mode, "mode", "m", "color", "View mode: color|binary")
	return c
}
