package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wuxin0011/lckit/internal/problem"
)

func newProblemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "problems",
		Short: "inspect the problem catalog",
	}
	cmd.AddCommand(newProblemsListCmd(), newProblemsShowCmd())
	return cmd
}

func loadRegistry() (*problem.Registry, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return problem.LoadFile(cfg.ProblemsFile)
}

func newProblemsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list registered problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			for _, meta := range registry.List() {
				line := fmt.Sprintf("%-12s %-8s %s", meta.ID, meta.Difficulty, meta.Title)
				cmd.Println(strings.TrimRight(line, " "))
			}
			return nil
		},
	}
}

func newProblemsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "show one problem's metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry()
			if err != nil {
				return err
			}
			meta, ok := registry.Resolve(args[0])
			if !ok {
				return fmt.Errorf("unknown problem: %s", args[0])
			}
			cmd.Printf("id:         %s\n", meta.ID)
			cmd.Printf("title:      %s\n", meta.Title)
			if meta.Description != "" {
				cmd.Printf("about:      %s\n", meta.Description)
			}
			if meta.URL != "" {
				cmd.Printf("url:        %s\n", meta.URL)
			}
			if meta.Difficulty != "" {
				cmd.Printf("difficulty: %s\n", meta.Difficulty)
			}
			if meta.Tag != "" {
				tag := string(meta.Tag)
				if meta.CustomTag != "" {
					tag += " (" + meta.CustomTag + ")"
				}
				cmd.Printf("tag:        %s\n", tag)
			}
			for _, link := range meta.Links {
				cmd.Printf("link:       %s\n", link)
			}
			return nil
		},
	}
}
