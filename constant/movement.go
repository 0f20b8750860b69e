package constant

type MovementStatus int

const (
	MovementStatusPending   MovementStatus = 1
	MovementStatusCompleted MovementStatus = 2
	MovementStatusCancelled MovementStatus = 3
)

type MovementType string

const (
	MovementTypeImport      MovementType = "IMPORT"
	MovementTypeExport      MovementType = "EXPORT"
	MovementTypeTransferOut MovementType = "TRANSFER_OUT"
)

// MovementCodePrefix maps a movement type to its document code prefix,
// e.g. PN-2026-0001 for imports.
var MovementCodePrefix = map[MovementType]string{
	MovementTypeImport:      "PN",
	MovementTypeExport:      "PX",
	MovementTypeTransferOut: "PCK",
}
