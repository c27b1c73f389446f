package txhistory

import (
	"time"

	"github.com/stretchr/testify/mock"
)

const (
	testAddress = "0xAbC0000000000000000000000000000000000001"
	otherParty  = "0x0000000000000000000000000000000000000002"
)

// rawTransfer builds a valid external transfer dated at unix second ts, or
// undated when ts is zero.
func rawTransfer(hash, from, to string, ts int64) RawTransfer {
	raw := RawTransfer{
		Hash:     hash,
		From:     from,
		To:       to,
		Category: CategoryExternal,
		Amount:   BaseUnits("1000000000000000000"),
	}
	if ts != 0 {
		raw.BlockTimestamp = time.Unix(ts, 0).UTC()
	}
	return raw
}

func inboundQuery(address string) interface{} {
	return mock.MatchedBy(func(q TransferQuery) bool { return q.ToAddress == address && q.FromAddress == "" })
}

func outboundQuery(address string) interface{} {
	return mock.MatchedBy(func(q TransferQuery) bool { return q.FromAddress == address && q.ToAddress == "" })
}

func hashes(raws []RawTransfer) []string {
	out := make([]string, 0, len(raws))
	for _, r := range raws {
		out = append(out, r.Hash)
	}
	return out
}

func fixedClock(unix int64) func() time.Time {
	return func() time.Time { return time.Unix(unix, 0) }
}
