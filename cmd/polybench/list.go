package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"polybench/internal/registry"
	"polybench/internal/ui"
	"polybench/internal/workload"
)

var listTree bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listTree, "tree", false, "Show every test as a category tree")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the polymorphism categories and computations",
	Long:  `List every polymorphism category and computation that can be passed to polybench.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		reg := registry.Default()
		out := cmd.OutOrStdout()

		if listTree {
			fmt.Fprint(out, catalogTree(reg).String())
			return
		}

		fmt.Fprintln(out, ui.Header("Polymorphism Benchmark"))
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Section("Polymorphism categories:"))
		for _, c := range reg.Categories() {
			fmt.Fprintln(out, ui.Item(c))
		}
		fmt.Fprintln(out, ui.Section("Computations:"))
		for _, w := range workload.Names() {
			fmt.Fprintln(out, ui.Item(w))
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, ui.Muted(fmt.Sprintf("%d tests in total", reg.Len())))
	},
}

// catalogTree lays the registry out as category branches with workload
// leaves, in run order.
func catalogTree(reg *registry.Registry) treeprint.Tree {
	tree := treeprint.NewWithRoot("polybench")
	for _, c := range reg.Categories() {
		branch := tree.AddBranch(c)
		for _, w := range reg.Workloads(c) {
			branch.AddNode(w)
		}
	}
	return tree
}
