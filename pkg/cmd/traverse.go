package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c9s/rbtree/pkg/cmd/cmdutil"
	"github.com/c9s/rbtree/pkg/config"
	"github.com/c9s/rbtree/pkg/rbtree"
	"github.com/c9s/rbtree/pkg/style"
)

func init() {
	TraverseCmd.Flags().StringSlice("delete", nil, "keys deleted after all the keys are inserted")
	TraverseCmd.Flags().String("format", "table", "output format: table, yaml or json")
	RootCmd.AddCommand(TraverseCmd)
}

type traversal struct {
	Root        *rbtree.Entry[int64]  `json:"root,omitempty" yaml:"root,omitempty"`
	Inorder     []rbtree.Entry[int64] `json:"inorder" yaml:"inorder"`
	Postorder   []rbtree.Entry[int64] `json:"postorder" yaml:"postorder"`
	Size        int                   `json:"size" yaml:"size"`
	Height      int                   `json:"height" yaml:"height"`
	BlackHeight int                   `json:"blackHeight" yaml:"blackHeight"`
	Missing     []int64               `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// buildTraversal inserts keys, then deletes the deletes keys, and captures
// both traversals of the resulting tree.
func buildTraversal(keys, deletes []int64) (*traversal, error) {
	tree := rbtree.New[int64](rbtree.WithCapacity(len(keys)))
	for _, key := range keys {
		tree.Insert(key)
	}

	result := &traversal{}
	for _, key := range deletes {
		if err := tree.Delete(key); err != nil {
			if errors.Is(err, rbtree.ErrNotFound) || errors.Is(err, rbtree.ErrEmptyTree) {
				log.WithError(err).Warnf("skip deleting %d", key)
				result.Missing = append(result.Missing, key)
				continue
			}
			return nil, err
		}
	}

	if err := tree.Validate(); err != nil {
		return nil, err
	}

	if root, ok := tree.RootEntry(); ok {
		result.Root = &root
	}

	result.Inorder = tree.InorderEntries()
	result.Postorder = tree.PostorderEntries()
	result.Size = tree.Len()
	result.Height = tree.Height()
	result.BlackHeight = tree.BlackHeight()
	return result, nil
}

func renderTraversal(w io.Writer, result *traversal, format string, colored bool) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err

	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()

	case "table", "":
		if result.Root == nil {
			_, err := fmt.Fprintln(w, "the tree is empty")
			return err
		}

		fmt.Fprintf(w, "root is %d (%s)\n", result.Root.Key, result.Root.Color)
		style.EntriesTable(w, "in-order", result.Inorder, colored)
		style.EntriesTable(w, "post-order", result.Postorder, colored)
		return nil

	default:
		return errors.Errorf("unsupported format %q", format)
	}
}

var TraverseCmd = &cobra.Command{
	Use:   "traverse <keys...>",
	Short: "build a tree from the keys and print its traversals",
	Example: `  rbtree traverse 50 40 60 30 70 --delete 40
  rbtree traverse 10,20,30 --format yaml`,

	// SilenceUsage is an option to silence usage when an error occurs.
	SilenceUsage: true,

	RunE: func(cmd *cobra.Command, args []string) error {
		var keys []int64
		for _, arg := range args {
			ks, err := config.ParseKeys(arg)
			if err != nil {
				return err
			}
			keys = append(keys, ks...)
		}

		deletes, err := cmdutil.GetKeys(cmd.Flags(), "delete")
		if err != nil {
			return err
		}

		format, err := cmd.Flags().GetString("format")
		if err != nil {
			return err
		}

		result, err := buildTraversal(keys, deletes)
		if err != nil {
			return err
		}

		return renderTraversal(cmd.OutOrStdout(), result, format, !color.NoColor)
	},
}
