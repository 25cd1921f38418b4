package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/abhisek/mathcat/ent"
	"github.com/abhisek/mathcat/ent/responseevent"
	"github.com/abhisek/mathcat/internal/calibrate"
	"github.com/abhisek/mathcat/internal/skillgraph"
	"github.com/abhisek/mathcat/internal/store"
	"github.com/spf13/cobra"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Re-estimate item parameters from logged responses",
	Long: "Calibrate groups every logged response by item and ability band,\n" +
		"computes per-band pass rates, and derives updated difficulty and\n" +
		"discrimination anchored to the item's grade level.",
	RunE: runCalibrate,
}

func init() {
	calibrateCmd.Flags().Int("min-responses", 10, "Minimum responses before an item is calibrated")
}

// abilityBands partition theta into cohorts for per-band pass rates.
var abilityBands = []struct {
	lo, hi float64
}{
	{-4, -1},
	{-1, 0},
	{0, 1},
	{1, 4.01},
}

const minBandResponses = 3

func runCalibrate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	minResponses, _ := cmd.Flags().GetInt("min-responses")

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	events, err := st.Client().ResponseEvent.Query().
		Order(ent.Asc(responseevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query responses: %w", err)
	}
	if len(events) == 0 {
		cmd.Println("no responses logged yet")
		return nil
	}

	byItem := make(map[string][]*ent.ResponseEvent)
	for _, e := range events {
		byItem[e.ItemID] = append(byItem[e.ItemID], e)
	}

	itemIDs := make([]string, 0, len(byItem))
	for id := range byItem {
		itemIDs = append(itemIDs, id)
	}
	sort.Strings(itemIDs)

	calibrated := 0
	for _, itemID := range itemIDs {
		responses := byItem[itemID]
		if len(responses) < minResponses {
			continue
		}

		pValues := bandPassRates(responses)
		if len(pValues) == 0 {
			continue
		}

		// Grade anchoring comes from the skill the item assesses.
		grade := ""
		if s, err := skillgraph.GetSkill(responses[0].SkillID); err == nil {
			grade = strconv.Itoa(s.GradeLevel)
		}

		difficulty, discrimination := calibrate.Calibrate(pValues, grade)
		last := responses[len(responses)-1]
		cmd.Printf("%-24s n=%-4d β %.2f → %.2f   α %.2f → %.2f\n",
			itemID, len(responses),
			last.Difficulty, difficulty,
			last.Discrimination, discrimination)
		calibrated++
	}

	cmd.Printf("calibrated %d of %d items (min %d responses)\n",
		calibrated, len(byItem), minResponses)
	return nil
}

// bandPassRates computes the fraction correct within each ability band that
// has enough responses to be informative.
func bandPassRates(responses []*ent.ResponseEvent) []float64 {
	var pValues []float64
	for _, band := range abilityBands {
		total, correct := 0, 0
		for _, r := range responses {
			if r.ThetaAfter >= band.lo && r.ThetaAfter < band.hi {
				total++
				if r.Correct {
					correct++
				}
			}
		}
		if total >= minBandResponses {
			pValues = append(pValues, float64(correct)/float64(total))
		}
	}
	return pValues
}
