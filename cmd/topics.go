package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mentora/internal/store"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Manage study topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available topics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		topics, err := st.TopicRepo().ListTopics(context.Background())
		if err != nil {
			return fmt.Errorf("list topics: %w", err)
		}
		if len(topics) == 0 {
			fmt.Println("No topics yet. Add one with `mentora topics add`.")
			return nil
		}

		fmt.Printf("%-24s  %s\n", "ID", "Title")
		fmt.Println(strings.Repeat("─", 60))
		for _, t := range topics {
			fmt.Printf("%-24s  %s\n", t.ID, t.Title)
		}
		return nil
	},
}

var topicsAddCmd = &cobra.Command{
	Use:   "add <id> <title> [content-file]",
	Short: "Add or update a topic",
	Long:  "Adds a topic. Content is read from the given file, or from stdin when no file is passed.",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, title := args[0], args[1]

		var content []byte
		var err error
		if len(args) == 3 {
			content, err = os.ReadFile(args[2])
			if err != nil {
				return fmt.Errorf("read content file: %w", err)
			}
		} else {
			content, err = io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		topic := &store.Topic{ID: id, Title: title, Content: string(content)}
		if err := st.TopicRepo().SaveTopic(context.Background(), topic); err != nil {
			return fmt.Errorf("save topic: %w", err)
		}

		fmt.Printf("Saved topic %s (%s, %d bytes of content)\n", id, title, len(content))
		return nil
	},
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsAddCmd)
}
