package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var seeds = []string{
	"",
	"a",
	"\n",
	"\n\n\n",
	"abc\ndef",
	"華文\ndef",
	"tab\tsep\r\nwindows\r\n",
	"é combining",
	"🙂‍🙂 zwj",
	"ok\xffbad",
	"\xef\xbb\xbfbom first",
}

func addSeeds(f *testing.F) {
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clip(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
