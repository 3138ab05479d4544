package db

import "fmt"

// courseRowID derives a stable opaque id for a ledger-owned course row.
// Draft rows carry uuids; rows read back from the ledger are keyed by their
// storage identity instead.
func courseRowID(semesterID, rowID int64) string {
	return fmt.Sprintf("db-%d-%d", semesterID, rowID)
}
