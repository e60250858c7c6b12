package cli

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/packlist/internal/model"
	"github.com/idilsaglam/packlist/internal/tui"
	"github.com/idilsaglam/packlist/internal/ui"
)

type appFunc func() *App

func newListCmd(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List templates",
		Args:    args(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			st := app().Store
			t := ui.Current()
			lines := []string{t.Title.Render("Templates"), ""}
			for _, name := range st.TemplateNames() {
				items, err := st.Template(name)
				if err != nil {
					return err
				}
				lines = append(lines, fmt.Sprintf("%s %s", name, t.Muted.Render(fmt.Sprintf("(%d items)", len(items)))))
			}
			if st.Len() == 0 {
				lines = append(lines, t.Muted.Render("no templates"))
			}
			if st.Seeded() {
				lines = append(lines, "", t.Muted.Render("Sample templates; they are saved on your first change."))
			}
			lines = append(lines, "", t.Muted.Render("Tip: create one with `packlist new \"Camping\"`"))
			ui.Panel(cmd.OutOrStdout(), lines)
			return nil
		},
	}
}

func newNewCmd(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "new [name...]",
		Short: "Create an empty template (prompts when no name is given)",
		RunE: func(cmd *cobra.Command, a []string) error {
			name := strings.Join(a, " ")
			if len(a) == 0 {
				err := survey.AskOne(&survey.Input{Message: "Template name:"}, &name, survey.WithValidator(survey.Required))
				if err != nil {
					return err
				}
			}
			if err := app().Store.CreateTemplate(name); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("created %q", strings.TrimSpace(name)))
			return nil
		},
	}
}

func newShowCmd(app appFunc) *cobra.Command {
	var (
		filter  string
		showIDs bool
	)
	cmd := &cobra.Command{
		Use:   "show <template>",
		Short: "Show a template's items",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return err
			}
			sess, err := app().Session(a[0])
			if err != nil {
				return err
			}
			sess.SetFilter(f)
			renderTemplate(cmd.OutOrStdout(), a[0], f, slices.Collect(sess.FilteredItems()), showIDs)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "category to show: All, Valuables, Clothing, Gadget, Other")
	cmd.Flags().BoolVar(&showIDs, "ids", false, "print item ids")
	return cmd
}

func newAddCmd(app appFunc) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "add <template> <item...>",
		Short: "Add an item to a template and save it",
		Args:  args(cobra.MinimumNArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			c, err := model.ParseCategory(category)
			if err != nil {
				return err
			}
			sess, err := app().Session(a[0])
			if err != nil {
				return err
			}
			if err := sess.SetActiveCategory(c); err != nil {
				return err
			}
			it, err := sess.AddActiveItem(strings.Join(a[1:], " "))
			if err != nil {
				return err
			}
			if err := sess.Commit(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("added %s %s to %q", ui.Badge(it.Category), it.Name, a[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", string(model.Other), "Valuables, Clothing, Gadget or Other")
	return cmd
}

func newRmCmd(app appFunc) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "rm <template> <index|id>",
		Short: "Remove an item (1-based index from `show` with the same --filter, or its id) and save",
		Args:  args(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, a []string) error {
			f, err := model.ParseFilter(filter)
			if err != nil {
				return err
			}
			sess, err := app().Session(a[0])
			if err != nil {
				return err
			}
			sess.SetFilter(f)
			shown := slices.Collect(sess.FilteredItems())
			target, ok := findItem(shown, a[1])
			if !ok {
				target, ok = findItemByID(sess.Items(), a[1])
			}
			if !ok {
				hint := ui.Current().Muted.Render(fmt.Sprintf("run `packlist show %q --filter %s --ids` to see valid indexes and ids", a[0], f))
				return usageError{fmt.Errorf("no item %q in %q (have %d)\n%s", a[1], a[0], len(shown), hint)}
			}
			sess.DeleteItem(target.ID)
			if err := sess.Commit(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), fmt.Sprintf("removed %s from %q", target.Name, a[0]))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(model.FilterAll), "category the index counts within, as passed to `show`")
	return cmd
}

// findItem resolves a 1-based index or an item id within items.
func findItem(items []model.Item, ref string) (model.Item, bool) {
	if n, err := strconv.Atoi(ref); err == nil {
		if n < 1 || n > len(items) {
			return model.Item{}, false
		}
		return items[n-1], true
	}
	return findItemByID(items, ref)
}

func findItemByID(items []model.Item, id string) (model.Item, bool) {
	i := slices.IndexFunc(items, func(it model.Item) bool { return it.ID == id })
	if i < 0 {
		return model.Item{}, false
	}
	return items[i], true
}

func newEditCmd(app appFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "edit [template]",
		Aliases: []string{"pack"},
		Short:   "Open the interactive editor",
		Args:    args(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			name := ""
			if len(a) == 1 {
				name = a[0]
			}
			sess, err := app().Session(name)
			if err != nil {
				return err
			}
			return tui.Run(app().Store, sess)
		},
	}
}

func newExportCmd(app appFunc) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <template>",
		Short: "Print a template as json, yaml or toml",
		Args:  args(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, a []string) error {
			sess, err := app().Session(a[0])
			if err != nil {
				return err
			}
			t := model.Template{Name: a[0], Items: sess.Items()}

			var out []byte
			switch strings.ToLower(format) {
			case "json":
				out, err = json.MarshalIndent(t, "", "  ")
				out = append(out, '\n')
			case "yaml", "yml":
				out, err = yaml.Marshal(t)
			case "toml":
				out, err = toml.Marshal(t)
			default:
				return usageError{fmt.Errorf("unknown format %q (want json, yaml or toml)", format)}
			}
			if err != nil {
				return fmt.Errorf("encode %s: %w", format, err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "json, yaml or toml")
	return cmd
}
