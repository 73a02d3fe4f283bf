package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/input-output-hk/catalyst-jslint/javascript/lint"
	"github.com/input-output-hk/catalyst-jslint/javascript/lint/rules/correctness"
)

func newRulesCmd(a *app) *cobra.Command {
	var tag string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available rules",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			registry, err := correctness.Recommended()
			if err != nil {
				return err
			}
			rules := registry.All()
			if tag != "" {
				rules = registry.WithTag(tag)
			}
			for _, rule := range rules {
				fmt.Fprintf(a.stdout, "%-28s %-14s %s\n", rule.Code(), strings.Join(rule.Tags(), ","), rule.Description())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&tag, "tag", "", "only list rules with this tag (e.g. "+lint.TagRecommended+")")
	return cmd
}
