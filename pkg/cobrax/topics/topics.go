// Package topics adds help topics to a Cobra command: markdown or text
// documents shipped with the binary and shown with "help <topic>".
//
// Topics are read from an fs.FS, usually an embed.FS, so the binary
// carries its own documentation. A file named option-<flag>.md is also
// reachable as "help --<flag>".
package topics

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/minimessage/pkg/errors"
)

const optionPrefix = "option-"

// Renderer formats topic content for display.
type Renderer interface {
	// Render receives the raw content and the file extension, e.g. ".md".
	Render(content string, format string) string
}

// PlainRenderer shows content unchanged.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, _ string) string {
	return content
}

// Topic is one help document.
type Topic struct {
	Name    string
	Path    string
	Content string
}

// Options configures a Manager.
type Options struct {
	// Extensions considered topics. Defaults to .md and .txt.
	Extensions []string
	// Renderer defaults to PlainRenderer.
	Renderer Renderer
}

// Manager holds the topics of one command tree.
type Manager struct {
	source     fs.FS
	topics     map[string]*Topic
	extensions []string
	renderer   Renderer
}

// New scans source for topics.
func New(source fs.FS, opts Options) (*Manager, error) {
	m := &Manager{
		source:     source,
		topics:     make(map[string]*Topic),
		extensions: opts.Extensions,
		renderer:   opts.Renderer,
	}
	if len(m.extensions) == 0 {
		m.extensions = []string{".md", ".txt"}
	}
	if m.renderer == nil {
		m.renderer = PlainRenderer{}
	}
	if err := m.scan(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manager) scan() error {
	err := fs.WalkDir(m.source, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		ext := path.Ext(p)
		if d.IsDir() || !slices.Contains(m.extensions, ext) {
			return nil
		}
		content, err := fs.ReadFile(m.source, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(path.Base(p), ext)
		m.topics[name] = &Topic{Name: name, Path: p, Content: string(content)}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrNotFound, "failed to scan help topics")
	}
	return nil
}

// Get finds a topic by name. Flag spellings such as --strict also match
// option-strict.
func (m *Manager) Get(name string) (*Topic, bool) {
	name = strings.TrimLeft(name, "-")
	if t, ok := m.topics[name]; ok {
		return t, true
	}
	t, ok := m.topics[optionPrefix+name]
	return t, ok
}

// Names lists the topic names, sorted.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.topics))
	for name := range m.topics {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Show writes the rendered topic to w.
func (m *Manager) Show(w io.Writer, t *Topic) {
	fmt.Fprint(w, m.renderer.Render(t.Content, path.Ext(t.Path)))
}

// List writes the topic index to w.
func (m *Manager) List(w io.Writer, program string) {
	names := m.Names()
	if len(names) == 0 {
		fmt.Fprintln(w, "No help topics available.")
		return
	}

	var general, options []string
	for _, name := range names {
		if opt, ok := strings.CutPrefix(name, optionPrefix); ok {
			options = append(options, opt)
		} else {
			general = append(general, name)
		}
	}

	fmt.Fprintln(w, "Available help topics:")
	if len(general) > 0 {
		fmt.Fprintln(w, "\nGeneral topics:")
		for _, name := range general {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	if len(options) > 0 {
		fmt.Fprintln(w, "\nOption topics:")
		for _, name := range options {
			fmt.Fprintf(w, "  --%s\n", name)
		}
	}
	fmt.Fprintf(w, "\nUse '%s help <topic>' to read about a specific topic.\n", program)
}

// Install replaces the help command and help function of root so that
// topics are found next to commands.
func (m *Manager) Install(root *cobra.Command) {
	originalHelp := root.HelpFunc()

	helpCmd := &cobra.Command{
		Use:   "help [command or topic]",
		Short: "Help about any command or topic",
		Long: `Help provides help for any command or topic in the application.
Simply type ` + root.Name() + ` help [path to command or topic] for full details.

To see all available help topics:
  ` + root.Name() + ` help topics`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			completions := []string{"topics"}
			for _, c := range root.Commands() {
				if !c.Hidden {
					completions = append(completions, c.Name())
				}
			}
			completions = append(completions, m.Names()...)
			return completions, cobra.ShellCompDirectiveNoFileComp
		},
		Run: func(cmd *cobra.Command, args []string) {
			switch {
			case len(args) == 0:
				originalHelp(root, args)
			case args[0] == "topics":
				m.List(cmd.OutOrStdout(), root.Name())
			default:
				if t, ok := m.Get(args[0]); ok {
					m.Show(cmd.OutOrStdout(), t)
					return
				}
				target, _, err := root.Find(args)
				if err != nil || target == nil {
					target = root
				}
				originalHelp(target, args)
			}
		},
	}

	for _, c := range root.Commands() {
		if c.Name() == "help" {
			root.RemoveCommand(c)
			break
		}
	}
	root.SetHelpCommand(helpCmd)

	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if t, ok := m.Get(args[0]); ok {
				m.Show(cmd.OutOrStdout(), t)
				return
			}
		}
		originalHelp(cmd, args)
	})
}
