package writers

import "fastaidx/internal/output"

func init() {
	RegisterStats("text", output.WriteStatsText)
	RegisterStats("tsv", output.WriteStatsTSV)
	RegisterStats("json", output.WriteStatsJSON)
	RegisterStats("yaml", output.WriteStatsYAML)
}
