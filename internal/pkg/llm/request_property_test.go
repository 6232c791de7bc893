package llm

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genDiffLines() gopter.Gen {
	return gen.SliceOfN(20, gen.RegexMatch(`[ -~]{0,60}`)).
		SuchThat(func(lines []string) bool { return len(lines) > 0 })
}

func TestBuildRequestProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("user content is the newline join of the input lines", prop.ForAll(
		func(lines []string) bool {
			req, err := BuildRequest(requestConfig(), lines)
			if err != nil {
				return false
			}
			return req.Messages[1].Content == strings.Join(lines, "\n")
		},
		genDiffLines(),
	))

	properties.Property("line order and count survive the round trip", prop.ForAll(
		func(lines []string) bool {
			req, err := BuildRequest(requestConfig(), lines)
			if err != nil {
				return false
			}
			got := strings.Split(req.Messages[1].Content, "\n")
			if len(got) != len(lines) {
				return false
			}
			for i := range lines {
				if got[i] != lines[i] {
					return false
				}
			}
			return true
		},
		// Lines without interior newlines split back losslessly
		gen.SliceOfN(10, gen.RegexMatch(`[a-zA-Z0-9 +-]{1,40}`)),
	))

	properties.Property("system instruction is always first and fixed", prop.ForAll(
		func(lines []string) bool {
			req, err := BuildRequest(requestConfig(), lines)
			if err != nil {
				return false
			}
			return len(req.Messages) == 2 && req.Messages[0].Content == SystemInstruction
		},
		genDiffLines(),
	))

	properties.TestingRun(t)
}
