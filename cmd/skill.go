package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathcat/internal/skillgraph"
	"github.com/spf13/cobra"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Browse the skill graph",
}

var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all skills (optionally filtered by category or grade)",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		grade, _ := cmd.Flags().GetInt("grade")

		var skills []skillgraph.Skill

		switch {
		case category != "" && grade != 0:
			return fmt.Errorf("use --category or --grade, not both")
		case category != "":
			skills = skillgraph.ByCategory(skillgraph.Category(category))
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for category %q", category)
			}
		case grade != 0:
			skills = skillgraph.ByGrade(grade)
			if len(skills) == 0 {
				return fmt.Errorf("no skills found for grade %d", grade)
			}
		default:
			skills = skillgraph.TopologicalOrder()
		}

		// Header.
		fmt.Printf("%-26s  %-36s  %5s  %-20s  %s\n",
			"ID", "Name", "Grade", "Category", "Difficulty")
		fmt.Println(strings.Repeat("─", 100))

		for _, s := range skills {
			name := s.Name
			if len(name) > 36 {
				name = name[:33] + "..."
			}
			fmt.Printf("%-26s  %-36s  %5d  %-20s  %+.1f\n",
				s.ID, name, s.GradeLevel,
				skillgraph.CategoryDisplayName(s.Category), s.BaseDifficulty)
		}

		fmt.Printf("\n%d skills\n", len(skills))
		return nil
	},
}

var skillShowCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show one skill with its prerequisites and what it unlocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := skillgraph.GetSkill(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", s.Name, s.ID)
		fmt.Printf("  grade %d  %s  base difficulty %+.1f\n",
			s.GradeLevel, skillgraph.CategoryDisplayName(s.Category), s.BaseDifficulty)
		if s.Description != "" {
			fmt.Printf("  %s\n", s.Description)
		}

		if prereqs := skillgraph.Prerequisites(s.ID); len(prereqs) > 0 {
			fmt.Println("  requires:")
			for _, p := range prereqs {
				fmt.Printf("    %s\n", p.ID)
			}
		}
		if enables := skillgraph.Enables(s.ID); len(enables) > 0 {
			fmt.Println("  unlocks:")
			for _, e := range enables {
				fmt.Printf("    %s\n", e.ID)
			}
		}
		return nil
	},
}

func init() {
	skillListCmd.Flags().String("category", "", "Filter by category (e.g. number-operations)")
	skillListCmd.Flags().Int("grade", 0, "Filter by grade level (3-8)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
}
