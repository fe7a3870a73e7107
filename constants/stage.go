package constants

// IngestStage is the canonical state of a single report ingestion.
type IngestStage string

// Stable values (logged on every stage transition).
const (
	StageReceived           IngestStage = "RECEIVED"            // file stored, pipeline started
	StageTextExtracted      IngestStage = "TEXT_EXTRACTED"      // stage 1 done (text, possibly empty)
	StageStructureExtracted IngestStage = "STRUCTURE_EXTRACTED" // stage 2 done (fields, possibly sparse)
	StageMemberResolved     IngestStage = "MEMBER_RESOLVED"     // owner identity known
	StageArchived           IngestStage = "ARCHIVED"            // terminal success
	StageFailed             IngestStage = "FAILED"              // terminal failure (fatal only)
)

// UnknownMemberName is the reserved display name owning reports whose
// patient name could not be extracted. Created lazily on first use.
const UnknownMemberName = "Unknown Member"
