package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/piposter/piposter/pkg/fonts"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// fontsCommand creates the fonts command for listing and picking label
// font presets.
func (c *CLI) fontsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fonts",
		Short: "List label font presets",
		Long: `List label font presets and whether they resolve on this system.

Presets map a short name to a font family and a list of candidate TTF
files searched with the system font lookup. The raster backend needs a
resolved TTF; the SVG backend only embeds the family name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range fonts.Names() {
				preset, err := fonts.Get(name)
				if err != nil {
					return err
				}
				path, err := preset.Resolve()
				status := StyleDim.Render("not installed")
				if err == nil {
					status = styleCached.Render(path)
				}
				marker := " "
				if name == fonts.Default {
					marker = "*"
				}
				fmt.Printf("%s %-16s %-20s %s\n", marker, name, preset.Family, status)
			}
			return nil
		},
	}

	cmd.AddCommand(c.fontsPickCommand())
	return cmd
}

// fontsPickCommand creates the interactive "fonts pick" subcommand.
func (c *CLI) fontsPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively pick a font preset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selected, err := pickFontPreset()
			if err != nil {
				return err
			}
			if selected == "" {
				printInfo("No preset selected")
				return nil
			}

			printSuccess("Selected preset %q", selected)
			printNextStep("Use it", fmt.Sprintf("%s generate --digit-font %s", appName, selected))
			return nil
		},
	}
}

// pickFontPreset runs the interactive preset list and returns the chosen
// name, or "" if the user quit without selecting.
func pickFontPreset() (string, error) {
	final, err := tea.NewProgram(newFontListModel(fonts.Names())).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(fontListModel)
	if !ok {
		return "", nil
	}
	return m.selected, nil
}

// fontListModel is the bubbletea model for interactive preset selection.
type fontListModel struct {
	names    []string
	cursor   int
	selected string
}

func newFontListModel(names []string) fontListModel {
	return fontListModel{names: names}
}

func (m fontListModel) Init() tea.Cmd {
	return nil
}

func (m fontListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			m.selected = m.names[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m fontListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Font Preset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.names {
		cursor := "  "
		style := listNormalStyle
		if i == m.cursor {
			cursor = "▸ "
			style = listSelectedStyle
		}

		line := name
		if preset, err := fonts.Get(name); err == nil {
			line = fmt.Sprintf("%-16s %s", name, listDimStyle.Render(preset.Family))
		}
		b.WriteString(cursor + style.Render(line) + "\n")
	}
	return b.String()
}
