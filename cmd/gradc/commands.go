package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"gradc/codec"
	"gradc/colors"
	"gradc/common"
	"gradc/config"
	"gradc/css"
	"gradc/state"
	"gradc/utils/images"
)

var errNoInput = errors.New("no input specified")

// readInput joins arguments into a single value, "-" means STDIN.
func readInput(args []string) (string, error) {
	if len(args) == 0 {
		return "", errNoInput
	}
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("unable to read input: %w", err)
		}
		return string(data), nil
	}
	return strings.Join(args, " "), nil
}

func parseValue(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	input, err := readInput(cmd.Args().Slice())
	if err != nil {
		return err
	}
	env.Rpt.StoreData("input.txt", []byte(input))

	res := env.Codec.GetColorData(input)
	env.Log.Debug("Parsed", zap.String("output", res.Output), zap.Bool("gradient", res.Gradient))

	var out []byte
	if cmd.Bool("yaml") {
		if out, err = yaml.Marshal(res); err != nil {
			return fmt.Errorf("unable to marshal result: %w", err)
		}
	} else {
		out = []byte(res.Value.Dump())
	}
	env.Rpt.StoreData("parsed.txt", out)

	if _, err := cmd.Root().Writer.Write(out); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

func formatValue(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	input, err := readInput(cmd.Args().Slice())
	if err != nil {
		return err
	}
	env.Rpt.StoreData("input.txt", []byte(input))

	mode, err := common.ParseViewMode(cmd.String("mode"))
	if err != nil {
		return fmt.Errorf("unable to parse mode: %w", err)
	}
	accept := env.Cfg.Codec.Mode
	if name := cmd.String("accept"); len(name) > 0 {
		if accept, err = common.ParseColorMode(name); err != nil {
			return fmt.Errorf("unable to parse accepted values kind: %w", err)
		}
	}

	c := env.Codec
	if cmd.Bool("no-multistops") {
		settings := c.Settings()
		settings.MultiStops = false
		c = codec.New(env.Log, settings)
	}

	verified := c.VerifyBySettings(input, accept)
	if verified != input {
		env.Log.Warn("Input is not accepted, replaced", zap.String("input", input), zap.Stringer("accept", accept), zap.String("replacement", verified))
	}
	res := c.GetColorData(verified)
	out := c.Format(res.Value, mode, cmd.Int("stop"), cmd.Int("gradient"))

	if _, err := fmt.Fprintln(cmd.Root().Writer, out); err != nil {
		return fmt.Errorf("unable to write result: %w", err)
	}
	return nil
}

func validateValue(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	input, err := readInput(cmd.Args().Slice())
	if err != nil {
		return err
	}
	text := css.Clean(input)
	conic := env.Codec.Settings().Conic

	checks := []struct {
		name string
		ok   bool
	}{
		{"hex", colors.IsHex(text)},
		{"rgb", colors.IsRGB(text)},
		{"rgba", colors.IsRGBA(text)},
		{"hsl", colors.IsHSL(text)},
		{"hsla", colors.IsHSLA(text)},
		{"named", colors.IsNamed(text)},
		{"color", colors.IsValidColor(text)},
		{"gradient", colors.IsGradient(text, conic)},
		{"accepted", env.Codec.Accepts(input, env.Cfg.Codec.Mode)},
	}

	w := cmd.Root().Writer
	valid := false
	for _, c := range checks {
		if _, err := fmt.Fprintf(w, "%-9s %t\n", c.name+":", c.ok); err != nil {
			return fmt.Errorf("unable to write result: %w", err)
		}
		if c.name == "color" || c.name == "gradient" {
			valid = valid || c.ok
		}
	}
	if !valid {
		return fmt.Errorf("%q is neither color nor gradient", text)
	}
	return nil
}

func imagingFormat(f config.ThumbnailFormat) imaging.Format {
	if f == config.ThumbnailFormatJpeg {
		return imaging.JPEG
	}
	return imaging.PNG
}

func renderThumbnail(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected INPUT and DESTINATION, got %d argument(s)", cmd.Args().Len())
	}
	input, err := readInput(cmd.Args().Slice()[:1])
	if err != nil {
		return err
	}
	dst := cmd.Args().Get(1)

	conf := env.Cfg.Thumbnails
	w, h := conf.Width, conf.Height
	if v := cmd.Int("width"); v > 0 {
		w = v
	}
	if v := cmd.Int("height"); v > 0 {
		h = v
	}

	res := env.Codec.GetColorData(input)
	img, err := images.Thumbnail(res.Value, w, h)
	if err != nil {
		return fmt.Errorf("unable to render thumbnail: %w", err)
	}

	if dst == "-" {
		if err := images.Encode(cmd.Root().Writer, img, imagingFormat(conf.Format), conf.JPEGQuality); err != nil {
			return fmt.Errorf("unable to encode thumbnail: %w", err)
		}
		return nil
	}
	if filepath.Ext(dst) == "" {
		dst += conf.Format.Ext()
	}
	if err := images.Save(img, dst, conf.JPEGQuality); err != nil {
		return err
	}
	env.Log.Info("Thumbnail created", zap.String("value", res.Output), zap.String("file", dst))
	return nil
}
