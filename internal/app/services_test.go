package app

import "testing"

// Boot invokes CheckRoutingTable and refuses to start on error; the shipped
// table must therefore be total.
func TestCheckRoutingTable(t *testing.T) {
	if err := CheckRoutingTable(); err != nil {
		t.Fatalf("routing table has a hole: %v", err)
	}
}
