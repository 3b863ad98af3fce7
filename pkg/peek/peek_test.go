package peek_test

import (
	"bytes"
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"github.com/san-kum/tensorpeek/pkg/peek"
	"github.com/san-kum/tensorpeek/pkg/render"
	"github.com/san-kum/tensorpeek/pkg/termcap"
	"github.com/san-kum/tensorpeek/pkg/view"
)

type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// capture drains buf into decoded log entries, one per line.
func capture(buf *bytes.Buffer) []entry {
	var entries []entry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e entry
		Expect(json.Unmarshal([]byte(line), &e)).To(Succeed())
		entries = append(entries, e)
	}
	return entries
}

func rampTensor(w, h, channels int) *view.Tensor {
	data := make([]float32, h*w*channels)
	for i := range data {
		data[i] = float32(i) / float32(len(data)-1)
	}
	return view.TensorFloat32([]int{1, h, w, channels}, data)
}

var _ = Describe("Logger", func() {
	var (
		buf    *bytes.Buffer
		logger *peek.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		logger = peek.New(zerolog.New(buf), render.Options{})
	})

	Describe("logging a well-formed buffer", func() {
		It("emits one info entry with the header and grid", func() {
			logger.Log(rampTensor(4, 2, 1), "act")

			entries := capture(buf)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal("info"))

			lines := strings.Split(entries[0].Message, "\n")
			Expect(lines[0]).To(Equal("act[1 2 4 1]"))
			Expect(lines[1:]).To(HaveLen(2))
			for _, line := range lines[1:] {
				Expect(line).To(HaveLen(4))
			}
		})

		It("falls back to the adapter label without a name", func() {
			logger.Log(rampTensor(2, 2, 1))

			entries := capture(buf)
			Expect(entries[0].Message).To(HavePrefix("tensor[1 2 2 1]"))
		})

		It("renders identically across repeated calls", func() {
			logger.Log(rampTensor(33, 21, 1), "rep")
			logger.Log(rampTensor(33, 21, 1), "rep")

			entries := capture(buf)
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Message).To(Equal(entries[1].Message))
		})

		It("renders an empty buffer as a placeholder", func() {
			logger.Log(view.NDFloat32(nil, nil, nil), "x")

			entries := capture(buf)
			Expect(entries[0].Level).To(Equal("info"))
			Expect(entries[0].Message).To(Equal("x[]\n<empty>"))
		})
	})

	Describe("logging a single channel", func() {
		It("suffixes the header with the channel index", func() {
			logger.LogChannel(rampTensor(4, 4, 3), 1, "probe")

			entries := capture(buf)
			Expect(entries[0].Level).To(Equal("info"))
			Expect(entries[0].Message).To(HavePrefix("probe[1 4 4 3], channel 1\n"))
		})

		It("warns once for a channel out of range and emits no grid", func() {
			logger.LogChannel(rampTensor(4, 4, 2), 2, "probe")

			entries := capture(buf)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal("warn"))
			Expect(entries[0].Message).To(Equal("cannot log channel 2 of 2"))
		})
	})

	Describe("rejecting malformed input", func() {
		It("warns for a shape it cannot interpret", func() {
			logger.Log(view.TensorFloat32([]int{2, 4, 4, 1}, make([]float32, 32)), "batch")

			entries := capture(buf)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal("warn"))
			Expect(entries[0].Message).To(HavePrefix("cannot log tensor with shape"))
		})

		It("warns for an element kind it cannot interpret", func() {
			logger.Log(view.TensorInt32([]int{1, 4, 4, 1}, make([]int32, 16)), "ids")

			entries := capture(buf)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal("warn"))
			Expect(entries[0].Message).To(Equal("cannot log tensor of type int32"))
		})

		It("never panics and keeps logging after a rejection", func() {
			logger.Log(view.TensorFloat32([]int{1, 2, 3}, nil), "bad")
			logger.Log(rampTensor(2, 2, 1), "good")

			entries := capture(buf)
			Expect(entries).To(HaveLen(2))
			Expect(entries[0].Level).To(Equal("warn"))
			Expect(entries[1].Level).To(Equal("info"))
		})
	})

	Describe("terminal capability", func() {
		It("renders half-block color when pinned to truecolor", func() {
			colored := logger.WithCapability(termcap.Capability{TrueColor: true})
			colored.Log(rampTensor(4, 4, 3), "rgb")

			entries := capture(buf)
			Expect(entries[0].Message).To(ContainSubstring("\x1b[48;2;"))
			Expect(entries[0].Message).To(ContainSubstring("╔════╗"))
		})

		It("stays monochrome when pinned to a plain terminal", func() {
			plain := logger.WithCapability(termcap.Capability{})
			plain.Log(rampTensor(4, 4, 3), "rgb")

			entries := capture(buf)
			Expect(entries[0].Message).NotTo(ContainSubstring("\x1b["))
		})

		It("reads COLORTERM fresh on every call", func() {
			GinkgoT().Setenv(termcap.EnvVar, "truecolor")
			logger.Log(rampTensor(4, 4, 3), "env")
			GinkgoT().Setenv(termcap.EnvVar, "")
			logger.Log(rampTensor(4, 4, 3), "env")

			entries := capture(buf)
			Expect(entries[0].Message).To(ContainSubstring("\x1b[48;2;"))
			Expect(entries[1].Message).NotTo(ContainSubstring("\x1b["))
		})
	})
})

var _ = Describe("Render", func() {
	It("returns text without touching any logger", func() {
		out, err := peek.Render(rampTensor(3, 2, 1), "pure")
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HavePrefix("pure[1 2 3 1]\n"))
	})

	It("propagates validation errors", func() {
		_, err := peek.RenderChannel(rampTensor(3, 2, 1), 5, "pure")
		Expect(err).To(MatchError("cannot log channel 5 of 1"))
	})
})
