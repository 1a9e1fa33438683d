package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	convey.Convey("Given a debug logger writing to a buffer", t, func() {
		ctx := context.Background()
		var buf bytes.Buffer
		l := New(&buf, slog.LevelDebug)

		convey.Convey("When logging with fields", func() {
			l.Info(ctx, "test message", String("k", "v"), Int("n", 3), Float64("f", 1.5), Error(errors.New("boom")))

			convey.Convey("Then the record holds every field and the caller", func() {
				out := buf.String()
				convey.So(out, convey.ShouldContainSubstring, "level=INFO")
				convey.So(out, convey.ShouldContainSubstring, `msg="test message"`)
				convey.So(out, convey.ShouldContainSubstring, "k=v n=3 f=1.5 error=boom")
				convey.So(out, convey.ShouldContainSubstring, "source=")
				convey.So(out, convey.ShouldContainSubstring, "logger_test.go:")
			})
		})

		convey.Convey("When logging through a named logger", func() {
			l.Named("decoder").Debug(ctx, "dropping", Any("code", 7))

			convey.Convey("Then fields are grouped under the name", func() {
				convey.So(buf.String(), convey.ShouldContainSubstring, "decoder.code=7")
			})
		})
	})

	convey.Convey("Given a warn logger", t, func() {
		ctx := context.Background()
		var buf bytes.Buffer
		l := New(&buf, slog.LevelWarn)

		convey.Convey("When logging below the level", func() {
			l.Debug(ctx, "hidden")
			l.Info(ctx, "hidden")
			l.Warn(ctx, "shown")
			l.Error(ctx, "shown too")

			convey.Convey("Then only warn and error are written", func() {
				convey.So(buf.String(), convey.ShouldNotContainSubstring, "hidden")
				convey.So(buf.String(), convey.ShouldContainSubstring, "level=WARN")
				convey.So(buf.String(), convey.ShouldContainSubstring, "level=ERROR")
				convey.So(l.Enabled(ctx, slog.LevelDebug), convey.ShouldBeFalse)
				convey.So(l.Enabled(ctx, slog.LevelError), convey.ShouldBeTrue)
			})
		})
	})
}

func TestNop(t *testing.T) {
	convey.Convey("Given a nop logger", t, func() {
		l := Nop()

		convey.Convey("Then nothing is enabled", func() {
			convey.So(l.Enabled(context.Background(), slog.LevelError), convey.ShouldBeFalse)
			l.Error(context.Background(), "discarded")
			convey.So(l.Named("x"), convey.ShouldNotBeNil)
		})
	})
}

func TestParseLevel(t *testing.T) {
	convey.Convey("Given level names", t, func() {
		cases := map[string]slog.Level{
			"debug":   slog.LevelDebug,
			"":        slog.LevelInfo,
			"INFO":    slog.LevelInfo,
			" warn ":  slog.LevelWarn,
			"warning": slog.LevelWarn,
			"error":   slog.LevelError,
		}

		convey.Convey("Then each parses to its level", func() {
			for name, want := range cases {
				got, err := ParseLevel(name)
				convey.So(err, convey.ShouldBeNil)
				convey.So(got, convey.ShouldEqual, want)
			}
		})

		convey.Convey("Then unknown names fail", func() {
			_, err := ParseLevel("verbose")
			convey.So(err, convey.ShouldNotBeNil)
			convey.So(err.Error(), convey.ShouldEqual, "unknown log level: verbose")
		})
	})
}
