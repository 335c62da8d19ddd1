package stats

// FieldKind determines how a cell's text is coerced.
type FieldKind int

const (
	// TextField keeps the cell text verbatim.
	TextField FieldKind = iota
	// RateField coerces to float64 (AVG, ERA, and friends).
	RateField
	// CountField coerces to int (counting stats).
	CountField
	// StolenBaseField is the composite "successful-attempted" format.
	StolenBaseField
)

// Field maps one stats-page column to a record key.
type Field struct {
	Label string // data-label attribute on the stats table cell
	Key   string // key in the record's stat map
	Kind  FieldKind
}

// Section identifies which half of the schema a row is read with.
type Section int

const (
	Batting Section = iota
	Pitching
)

func (s Section) String() string {
	if s == Pitching {
		return "pitching"
	}
	return "batting"
}

// Stat map keys for fields referenced outside this package.
const (
	KeyBattingOBP  = "batting_OBP"
	KeyBattingSLG  = "batting_SLG"
	KeyBattingAB   = "batting_AB"
	KeyBattingBB   = "batting_BB"
	KeyBattingHBP  = "batting_HBP"
	KeyBattingSB   = "batting_SB"
	KeySBSuccess   = "batting_SB_successful"
	KeySBAttempted = "batting_SB_attempted"
	KeyPitchingERA = "pitching_ERA"
	KeyPitchingIP  = "pitching_IP"
	KeyPitchingSV  = "pitching_SV"
)

// BattingSchema lists the batting-section columns in page order.
var BattingSchema = []Field{
	{Label: "AVG", Key: "batting_AVG", Kind: RateField},
	{Label: "OB%", Key: KeyBattingOBP, Kind: RateField},
	{Label: "SLG%", Key: KeyBattingSLG, Kind: RateField},
	{Label: "OPS", Key: "batting_OPS", Kind: RateField},
	{Label: "RBI", Key: "batting_RBI", Kind: CountField},
	{Label: "R", Key: "batting_R", Kind: CountField},
	{Label: "H", Key: "batting_H", Kind: CountField},
	{Label: "2B", Key: "batting_2B", Kind: CountField},
	{Label: "3B", Key: "batting_3B", Kind: CountField},
	{Label: "HR", Key: "batting_HR", Kind: CountField},
	{Label: "BB", Key: KeyBattingBB, Kind: CountField},
	{Label: "SO", Key: "batting_SO", Kind: CountField},
	{Label: "AB", Key: KeyBattingAB, Kind: CountField},
	{Label: "SB", Key: KeyBattingSB, Kind: StolenBaseField},
}

// PitchingSchema lists the pitching-section columns in page order.
var PitchingSchema = []Field{
	{Label: "ERA", Key: KeyPitchingERA, Kind: RateField},
	{Label: "WHIP", Key: "pitching_WHIP", Kind: RateField},
	{Label: "W-L", Key: "pitching_WL", Kind: TextField},
	{Label: "APP-GS", Key: "pitching_APP_GS", Kind: TextField},
	{Label: "CG", Key: "pitching_CG", Kind: TextField},
	{Label: "SHO", Key: "pitching_SHO", Kind: TextField},
	{Label: "SV", Key: KeyPitchingSV, Kind: CountField},
	{Label: "IP", Key: KeyPitchingIP, Kind: CountField},
	{Label: "H", Key: "pitching_H", Kind: CountField},
	{Label: "R", Key: "pitching_R", Kind: CountField},
	{Label: "ER", Key: "pitching_ER", Kind: TextField},
	{Label: "BB", Key: "pitching_BB", Kind: CountField},
	{Label: "SO", Key: "pitching_SO", Kind: CountField},
	{Label: "2B", Key: "pitching_2B", Kind: CountField},
	{Label: "3B", Key: "pitching_3B", Kind: CountField},
	{Label: "HR", Key: "pitching_HR", Kind: CountField},
	{Label: "B/AVG", Key: "pitching_BAVG", Kind: RateField},
	{Label: "WP", Key: "pitching_WP", Kind: CountField},
	{Label: "HBP", Key: "pitching_HBP", Kind: CountField},
	{Label: "BK", Key: "pitching_BK", Kind: CountField},
	{Label: "SFA", Key: "pitching_SFA", Kind: CountField},
	{Label: "SHA", Key: "pitching_SHA", Kind: CountField},
}

// SchemaFor returns the field table for a section.
func SchemaFor(section Section) []Field {
	if section == Pitching {
		return PitchingSchema
	}
	return BattingSchema
}
