package log

import (
	// Stdlib
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	// Vendor
	"github.com/fatih/color"
)

type (
	Level  uint32
	Logger bool
)

const (
	Trace Level = iota
	Debug
	Verbose
	Info
	Off
)

var levelNames = map[Level]string{
	Trace:   "trace",
	Debug:   "debug",
	Verbose: "verbose",
	Info:    "info",
	Off:     "off",
}

func LevelStrings() []string {
	return []string{"trace", "debug", "verbose", "info", "off"}
}

func MustLevelToString(level Level) string {
	name, ok := levelNames[level]
	if !ok {
		panic(fmt.Sprintf("unknown logging level: %v", uint32(level)))
	}
	return name
}

func MustStringToLevel(name string) Level {
	for level, levelName := range levelNames {
		if levelName == name {
			return level
		}
	}
	panic(fmt.Sprintf("unknown logging level: %v", name))
}

var v = uint32(Info)

func SetV(level Level) {
	atomic.StoreUint32(&v, uint32(level))
}

func V(level Level) Logger {
	if atomic.LoadUint32(&v) > uint32(level) {
		return Logger(false)
	}
	return Logger(true)
}

// The task tags are padded before being colored so that the escape
// sequences do not break the alignment.
var (
	tagRun  = color.New(color.FgCyan).Sprintf("%-9s", "[RUN]")
	tagOk   = color.New(color.FgGreen).Sprintf("%-9s", "[OK]")
	tagFail = color.New(color.FgRed).Sprintf("%-9s", "[FAIL]")
	tagWarn = color.New(color.FgYellow).Sprintf("%-9s", "[WARN]")
)

func (l Logger) log(v ...interface{}) {
	if l {
		fmt.Fprint(os.Stderr, v...)
	}
}

func (l Logger) logf(format string, v ...interface{}) {
	if l {
		fmt.Fprintf(os.Stderr, format, v...)
	}
}

func (l Logger) logln(v ...interface{}) {
	if l {
		fmt.Fprintln(os.Stderr, v...)
	}
}

func (l Logger) Log(msg string) {
	l.logln(msg)
}

func (l Logger) Run(msg string) {
	l.logf("%v %v\n", tagRun, msg)
}

func (l Logger) Ok(msg string) {
	l.logf("%v %v\n", tagOk, msg)
}

func (l Logger) Fail(msg string) {
	l.logf("%v %v\n", tagFail, msg)
}

func (l Logger) Warn(msg string) {
	l.logf("%v %v\n", tagWarn, msg)
}

// Stderr prints the stderr output captured from a subprocess.
func (l Logger) Stderr(content string) {
	if content == "" {
		return
	}
	l.Println("<<<<< stderr")
	l.Print(content)
	if !strings.HasSuffix(content, "\n") {
		l.Println()
	}
	l.Println(">>>>> stderr")
}

func (l Logger) Print(v ...interface{}) {
	l.log(v...)
}

func (l Logger) Printf(format string, v ...interface{}) {
	l.logf(format, v...)
}

func (l Logger) Println(v ...interface{}) {
	l.logln(v...)
}

func (l Logger) Fatal(v ...interface{}) {
	fmt.Fprint(os.Stderr, v...)
	os.Exit(1)
}

func (l Logger) Fatalf(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
	os.Exit(1)
}

func (l Logger) Fatalln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
	os.Exit(1)
}

func Run(msg string) {
	V(Info).Run(msg)
}

func Ok(msg string) {
	V(Info).Ok(msg)
}

func Fail(msg string) {
	V(Info).Fail(msg)
}

func Warn(msg string) {
	V(Info).Warn(msg)
}

func Stderr(content string) {
	V(Info).Stderr(content)
}

func Print(v ...interface{}) {
	V(Info).Print(v...)
}

func Printf(format string, v ...interface{}) {
	V(Info).Printf(format, v...)
}

func Println(v ...interface{}) {
	V(Info).Println(v...)
}

func Fatal(v ...interface{}) {
	V(Info).Fatal(v...)
}

func Fatalf(format string, v ...interface{}) {
	V(Info).Fatalf(format, v...)
}

func Fatalln(v ...interface{}) {
	V(Info).Fatalln(v...)
}
