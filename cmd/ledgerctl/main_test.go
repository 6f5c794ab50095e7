package main

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const seedYAML = `
tenants:
  - id: acme
    members:
      - {user: alice, role: ADMIN}
    accounts:
      - {code: "4", label: Third parties, class: 4, kind: LIABILITY}
      - {code: "401", label: Suppliers, class: 4, kind: LIABILITY, parent: "4"}
      - {code: "411", label: Clients, class: 4, kind: ASSET, parent: "4"}
      - {code: "4456", label: VAT deductible, class: 4, kind: ASSET, parent: "4"}
      - {code: "4457", label: VAT collected, class: 4, kind: LIABILITY, parent: "4"}
      - {code: "5", label: Treasury, class: 5, kind: TREASURY}
      - {code: "512", label: Bank, class: 5, kind: TREASURY, parent: "5"}
      - {code: "530", label: Cash, class: 5, kind: TREASURY, parent: "5"}
      - {code: "6", label: Expenses, class: 6, kind: EXPENSE}
      - {code: "607", label: Purchases, class: 6, kind: EXPENSE, parent: "6"}
      - {code: "7", label: Revenue, class: 7, kind: REVENUE}
      - {code: "706", label: Sales, class: 7, kind: REVENUE, parent: "7"}
    config:
      enabled: true
      suppliers: "401"
      clients: "411"
      bank: "512"
      cash: "530"
      vat_deductible: "4456"
      vat_collected: "4457"
      purchases: "607"
      sales: "706"
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestLedgerctl_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "ledger.db")
	seedPath := filepath.Join(dir, "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(seedYAML), 0o600))

	out, err := run(t, "--db", db, "seed", seedPath)
	require.NoError(t, err)
	assert.Contains(t, out, "12 account(s) created")

	out, err = run(t, "--db", db, "--tenant", "acme", "accounts", "--class", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "512")
	assert.NotContains(t, out, "607")

	out, err = run(t, "--db", db, "--tenant", "acme", "post-event", "CLIENT_INVOICE_ISSUED",
		"--ref", "INV-1", "--date", "2024-01-15", "--ht", "100.00", "--vat", "19", "--ttc", "119")
	require.NoError(t, err)
	assert.Contains(t, out, "Outcome: POSTED")
	assert.Contains(t, out, "119.00")

	out, err = run(t, "--db", db, "--tenant", "acme", "post-event", "CLIENT_INVOICE_ISSUED",
		"--ref", "INV-1", "--date", "2024-01-15", "--ht", "100.00", "--vat", "19", "--ttc", "119")
	require.NoError(t, err)
	assert.Contains(t, out, "Outcome: ALREADY_POSTED")
	id := regexp.MustCompile(`ID: (\S+)`).FindStringSubmatch(out)
	require.Len(t, id, 2)

	out, err = run(t, "--db", db, "--tenant", "acme", "entry", "show", id[1])
	require.NoError(t, err)
	assert.Contains(t, out, "INV-1")

	out, err = run(t, "--db", db, "--tenant", "acme", "post-event", "CLIENT_PAYMENT_RECEIVED",
		"--ref", "PAY-1", "--date", "2024-01-20", "--amount", "119", "--means", "bank")
	require.NoError(t, err)
	assert.Contains(t, out, "Outcome: POSTED")

	out, err = run(t, "--db", db, "--tenant", "acme", "trial", "--as-of", "2024-01-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Trial balance as of 2024-01-31")
	assert.Contains(t, out, "706")

	out, err = run(t, "--db", db, "--tenant", "acme", "ledger", "411", "--from", "2024-01-01", "--to", "2024-01-31")
	require.NoError(t, err)
	assert.Contains(t, out, "Ledger 411 Clients")
	assert.Contains(t, out, "Closing")

	out, err = run(t, "--db", db, "--tenant", "acme", "entry", "reverse", id[1], "--date", "2024-01-31")
	require.NoError(t, err)
	assert.Contains(t, out, "2024-01-31")

	_, err = run(t, "--db", db, "--tenant", "acme", "entry", "reverse", id[1])
	assert.Error(t, err)

	xlsx := filepath.Join(dir, "trial.xlsx")
	_, err = run(t, "--db", db, "--tenant", "acme", "trial", "--as-of", "2024-01-31", "--xlsx", xlsx)
	require.NoError(t, err)
	f, err := excelize.OpenFile(xlsx)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Trial balance")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(rows), 5)
}

func TestLedgerctl_RejectsBadAmount(t *testing.T) {
	db := filepath.Join(t.TempDir(), "ledger.db")
	_, err := run(t, "--db", db, "post-event", "CLIENT_PAYMENT_RECEIVED", "--ref", "P", "--amount", "1.234")
	assert.ErrorContains(t, err, "--amount")
}

func TestLedgerctl_Token(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	out, err := run(t, "--user", "alice", "token", "--ttl", "5m")
	require.NoError(t, err)
	assert.Regexp(t, `^[\w-]+\.[\w-]+\.[\w-]+\n$`, out)
}
