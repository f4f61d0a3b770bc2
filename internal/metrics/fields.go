package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrKind    = "kind"
	AttrOutcome = "outcome"
)

// Game kinds recorded by RecordGames.
const (
	GameCPU     = "cpu"
	GameUser    = "user"
	GamePlayoff = "playoff"
)

// Signing outcomes recorded by RecordSigning.
const (
	OutcomeSigned   = "signed"
	OutcomeRejected = "rejected"
)
