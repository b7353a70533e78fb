package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"gradc/presets"
	"gradc/state"
	"gradc/utils/images"
)

func listPresets(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	cat, err := env.Catalogue()
	if err != nil {
		return fmt.Errorf("unable to load presets: %w", err)
	}
	group := cat.Colors
	if cmd.Bool("gradients") {
		group = cat.Gradients
	}

	tw := tabwriter.NewWriter(cmd.Root().Writer, 0, 4, 2, ' ', 0)
	for _, section := range []struct {
		name string
		list []presets.Preset
	}{
		{"default", group.Defaults},
		{"custom", group.Custom},
	} {
		for _, p := range presets.Sorted(section.list) {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", section.name, p.Name, p.Data.Output)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("unable to write presets: %w", err)
	}

	dir := cmd.String("render")
	if len(dir) == 0 {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("unable to create directory '%s': %w", dir, err)
	}

	conf := env.Cfg.Thumbnails
	for _, p := range append(append([]presets.Preset{}, group.Defaults...), group.Custom...) {
		img, err := images.Thumbnail(p.Data.Value, conf.Width, conf.Height)
		if err != nil {
			return fmt.Errorf("unable to render preset %s: %w", p.Name, err)
		}
		fname := filepath.Join(dir, p.Name+conf.Format.Ext())
		if err := images.Save(img, fname, conf.JPEGQuality); err != nil {
			return err
		}
		env.Log.Debug("Preset rendered", zap.String("id", p.ID), zap.String("file", fname))
	}
	env.Log.Info("Preset thumbnails created", zap.String("directory", dir))
	return nil
}
