package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Neumenon/typeguard/is"
	"github.com/Neumenon/typeguard/platform"
	"github.com/Neumenon/typeguard/value"
)

// traversal holds the key-selection flags shared by keys, values and
// entries.
type traversal struct {
	all       bool
	inherited bool
	hidden    bool
}

func (t *traversal) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&t.all, "all", false, "every own or inherited name, hidden included, minus base-object names")
	cmd.Flags().BoolVar(&t.inherited, "inherited", false, "follow the parent chain")
	cmd.Flags().BoolVar(&t.hidden, "hidden", false, "include hidden properties")
}

// opts merges the flags with the config file; flags set explicitly win.
func (t *traversal) opts(cmd *cobra.Command, cfg keysConfig) value.KeyOpts {
	all, inherited, hidden := cfg.All, cfg.Inherited, cfg.Hidden
	if cmd.Flags().Changed("all") {
		all = t.all
	}
	if cmd.Flags().Changed("inherited") {
		inherited = t.inherited
	}
	if cmd.Flags().Changed("hidden") {
		hidden = t.hidden
	}
	return value.KeyOpts{EnumerableOnly: !hidden, FollowPrototypeChain: inherited, All: all}
}

// eachDocument loads args and calls fn for the selected value of each,
// writing a header before each document when there are several.
func (a *app) eachDocument(cmd *cobra.Command, args []string, fn func(w io.Writer, doc document) error) error {
	docs, err := a.loadDocuments(cmd.Context(), args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	for i, doc := range docs {
		if len(docs) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "==> %s <==\n", doc.Name)
		}
		doc.Value = selectPath(doc.Value, a.path)
		if err := fn(w, doc); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) newKeysCmd() *cobra.Command {
	var t traversal
	cmd := &cobra.Command{
		Use:   "keys [FILE...]",
		Short: "Print property names, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := t.opts(cmd, a.cfg.Keys)
			return a.eachDocument(cmd, args, func(w io.Writer, doc document) error {
				for _, k := range value.KeysWithOpts(doc.Value, opts) {
					fmt.Fprintln(w, k)
				}
				return nil
			})
		},
	}
	t.bind(cmd)
	a.bindPath(cmd)
	return cmd
}

func (a *app) newValuesCmd() *cobra.Command {
	var t traversal
	cmd := &cobra.Command{
		Use:   "values [FILE...]",
		Short: "Print property values, one per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := t.opts(cmd, a.cfg.Keys)
			return a.eachDocument(cmd, args, func(w io.Writer, doc document) error {
				for _, v := range value.ValuesWithOpts(doc.Value, opts) {
					fmt.Fprintln(w, value.Format(v))
				}
				return nil
			})
		},
	}
	t.bind(cmd)
	a.bindPath(cmd)
	return cmd
}

func (a *app) newEntriesCmd() *cobra.Command {
	var t traversal
	cmd := &cobra.Command{
		Use:   "entries [FILE...]",
		Short: "Print name/value pairs, tab separated",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := t.opts(cmd, a.cfg.Keys)
			return a.eachDocument(cmd, args, func(w io.Writer, doc document) error {
				for _, e := range value.EntriesWithOpts(doc.Value, opts) {
					fmt.Fprintf(w, "%s\t%s\n", e.Key, value.Format(e.Value))
				}
				return nil
			})
		},
	}
	t.bind(cmd)
	a.bindPath(cmd)
	return cmd
}

func (a *app) newTagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag [FILE...]",
		Short: "Print the kind tag of each document",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.eachDocument(cmd, args, func(w io.Writer, doc document) error {
				fmt.Fprintln(w, value.DisplayTag(doc.Value))
				return nil
			})
		},
	}
	a.bindPath(cmd)
	return cmd
}

func (a *app) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check PREDICATE [FILE...]",
		Short: "Apply a predicate to each document; exit 1 when any fails",
		Long: `Applies a named predicate to each document and prints true or false.

Names are matched case-insensitively and may carry an "is" prefix:

  typeguard check PlainObject config.json
  typeguard check isNumeral --path port config.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pred, ok := is.Lookup(args[0])
			if !ok {
				return fmt.Errorf("unknown predicate %q (see typeguard predicates)", args[0])
			}
			failed := 0
			err := a.eachDocument(cmd, args[1:], func(w io.Writer, doc document) error {
				matched := pred(doc.Value)
				if !matched {
					failed++
				}
				fmt.Fprintln(w, matched)
				return nil
			})
			if err != nil {
				return err
			}
			if failed > 0 {
				a.logger.Debug("predicate failed", zap.String("predicate", args[0]), zap.Int("documents", failed))
				return errCheckFailed
			}
			return nil
		},
	}
	a.bindPath(cmd)
	return cmd
}

func (a *app) bindPath(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.path, "path", "", "dot-separated property path to select before inspecting")
}

func newPredicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predicates",
		Short: "List predicate names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(is.Names(), "\n"))
			return nil
		},
	}
}

func newPlatformCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platform",
		Short: "Print platform information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := platform.Current()
			out, err := yaml.Marshal(struct {
				Name          string `yaml:"name"`
				platform.Info `yaml:",inline"`
			}{info.Name(), info})
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "typeguard %s\n", version)
		},
	}
}
