package main

import (
	"fmt"
	"strconv"

	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/minimessage/pkg/component"
	"github.com/arthur-debert/minimessage/pkg/logging"
	"github.com/arthur-debert/minimessage/pkg/markup"
	"github.com/arthur-debert/minimessage/pkg/presets"
	"github.com/arthur-debert/minimessage/pkg/render"
	"github.com/arthur-debert/minimessage/pkg/tag/standard"
)

// deserialize reads the input and builds its tree.
func (a *app) deserialize(cmd *cobra.Command, args []string) (*component.Component, map[string]string, error) {
	if err := a.loadConfig(cmd); err != nil {
		return nil, nil, err
	}
	input, err := a.input(args)
	if err != nil {
		return nil, nil, err
	}
	d, err := a.deserializer()
	if err != nil {
		return nil, nil, err
	}
	c, err := d.Deserialize(input)
	if err != nil {
		return nil, nil, err
	}
	return c, d.Translations(), nil
}

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse [file|-]",
		Short:   MsgParseShort,
		Long:    MsgParseLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cmd.parse"), "parse")
			defer done()

			c, _, err := a.deserialize(cmd, args)
			if err != nil {
				return err
			}

			format := a.cfg.Render.Format
			if format == render.FormatANSI || format == render.FormatHTML {
				format = render.FormatJSON
			}
			data, err := render.Export(c, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&a.markup, "markup", "m", "", MsgFlagMarkup)
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render [file|-]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			done := logging.LogOperationStart(logging.GetLogger("cmd.render"), "render")
			defer done()

			c, translations, err := a.deserialize(cmd, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			profile := a.profile(out)
			rendered, err := render.Render(c, a.cfg.Render.Format, render.Options{
				Translations: translations,
				Profile:      profile,
				Hyperlinks:   profile != termenv.Ascii,
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}
	cmd.Flags().StringVarP(&a.markup, "markup", "m", "", MsgFlagMarkup)
	return cmd
}

// eventRow describes one tokenizer event for the table.
func eventRow(e markup.Event) []string {
	offset := strconv.Itoa(e.Location())
	switch ev := e.(type) {
	case markup.TextEvent:
		return []string{ev.Kind().String(), offset, "", strconv.Quote(ev.Content)}
	case markup.StartTagEvent:
		detail := ev.Args.Raw()
		if ev.SelfClosing {
			detail += " (self-closing)"
		}
		return []string{ev.Kind().String(), offset, ev.Name, detail}
	case markup.EndTagEvent:
		return []string{ev.Kind().String(), offset, ev.Name, ""}
	}
	return []string{e.Kind().String(), offset, "", ""}
}

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tokens [file|-]",
		Short:   MsgTokensShort,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			input, err := a.input(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if a.profile(out) == termenv.Ascii {
				pterm.DisableStyling()
			}

			rows := pterm.TableData{{"KIND", "OFFSET", "NAME", "DETAIL"}}
			for _, e := range markup.Tokenize(input) {
				rows = append(rows, eventRow(e))
			}
			return pterm.DefaultTable.
				WithHasHeader().
				WithData(rows).
				WithWriter(out).
				Render()
		},
	}
	cmd.Flags().StringVarP(&a.markup, "markup", "m", "", MsgFlagMarkup)
	return cmd
}

func newTagsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		Short:   MsgTagsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cmd); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, MsgTagSetsHeader)
			for _, name := range standard.Names() {
				fmt.Fprintf(out, "  %s\n", name)
			}

			fmt.Fprintln(out)
			if a.cfg.Presets == "" {
				fmt.Fprintln(out, MsgNoPresets)
				return nil
			}
			names, err := presetNames(a)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, MsgPresetsHeader)
			for _, name := range names {
				fmt.Fprintf(out, "  <%s>\n", name)
			}
			return nil
		},
	}
}

func presetNames(a *app) ([]string, error) {
	file, err := presets.Load(a.fs, a.cfg.Presets)
	if err != nil {
		return nil, err
	}
	r, err := file.Resolver()
	if err != nil {
		return nil, err
	}
	return r.Names(), nil
}
