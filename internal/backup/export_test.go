package backup

import "time"

// SetNow overrides the manager's clock for tests in package backup_test.
func SetNow(m *Manager, now func() time.Time) { m.now = now }
