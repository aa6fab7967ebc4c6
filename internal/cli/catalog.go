package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"careercompass/internal/catalog"
	"careercompass/internal/localstore"
	"careercompass/internal/model"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the built-in question bank and course catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		bank, err := catalog.DefaultBank()
		if err != nil {
			return err
		}
		courses, err := catalog.DefaultCourseCatalog()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "question bank %s: %d questions, %d deep-dive groups\n",
			bank.Version(), bank.Len(), len(bank.Groups()))
		fmt.Fprintf(cmd.OutOrStdout(), "course catalog: %d courses\n", courses.Len())
		return nil
	},
}

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List the course catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		courses, err := catalog.DefaultCourseCatalog()
		if err != nil {
			return err
		}
		class, _ := cmd.Flags().GetString("class")
		level := model.ClassLevel(class)
		if level != "" && !level.Valid() {
			return fmt.Errorf("unknown class level %q", class)
		}

		list := courses.All()
		if level != "" {
			eligible := list[:0]
			for _, c := range list {
				if c.EligibleFor(level) {
					eligible = append(eligible, c)
				}
			}
			list = eligible
		}
		writeCourses(cmd.OutOrStdout(), list)
		return nil
	},
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List locally saved sessions",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := localstore.Open(cfg.LocalStore.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		ids, err := store.Sessions(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tANSWERED\tCLASS\tSTARTED")
		for _, id := range ids {
			sess, err := store.GetSession(ctx, id)
			if err != nil {
				return err
			}
			answers, err := store.Load(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n", sess.ID, sess.Status, len(answers),
				sess.Profile.ClassLevel, sess.CreatedAt.Format("2006-01-02 15:04"))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd, coursesCmd, sessionsCmd)
	coursesCmd.Flags().String("class", "", "only courses open to class_10 or class_12")
}

func writeCourses(out io.Writer, courses []model.Course) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSTREAM\tCLASSES\tMIN MARKS")
	for _, c := range courses {
		levels := make([]string, len(c.ClassLevels))
		for i, l := range c.ClassLevels {
			levels[i] = string(l)
		}
		minMarks := "-"
		if c.MinMarks > 0 {
			minMarks = fmt.Sprintf("%.0f%%", c.MinMarks)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Stream, strings.Join(levels, ","), minMarks)
	}
	w.Flush()
}
