/*
 * amp.go, part of goelectro.
 *
 * Copyright 2023 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goElectro is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package amp

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	electro "github.com/rmera/goelectro"
)

const (
	lzwLitwidth int = 8
	defaultPrec int = 6
)

//Write!
type AmpW struct {
	f         *os.File
	h         io.WriteCloser
	filename  string
	writeable bool
	nsamples  int
	lastt     float64
	prec      int
}

func (S *AmpW) Close() {
	if S == nil {
		return
	}
	if S.writeable {
		S.h.Close()
		S.f.Close()
	}
	S.writeable = false
	return
}

//Len returns the number of samples written so far.
func (S *AmpW) Len() int {
	return S.nsamples
}

//WNext writes the next sample of the trace: the time in seconds since the
//start of the run and the current in amperes. Times must be given in
//strictly increasing order, as the format requires.
func (S *AmpW) WNext(time, current float64) error {
	if !S.writeable {
		return Error{TraceUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if S.nsamples > 0 && time <= S.lastt {
		return Error{fmt.Sprintf("Time %v not greater than the previous sample's %v", time, S.lastt), S.filename, []string{"WNext"}, true}
	}
	_, err := S.h.Write([]byte(fmt.Sprintf("%.*g %.*g\n", S.prec, time, S.prec, current)))
	if err != nil {
		return Error{err.Error(), S.filename, []string{"WNext"}, true}
	}
	S.lastt = time
	S.nsamples++
	return nil
}

//a WriteCloser that doesn't close the underlying writer, for plain-text
//traces, where the underlying *os.File is closed separately.
type plainw struct {
	io.Writer
}

func (p plainw) Close() error { return nil }

//NewWriter opens the file name for writing an amperometry trace, writes
//the header (which can be nil) and returns the handle. The compression is
//selected from the last letter of the filename, as described in the format
//specification. compressionLevel is only honored by the flate and gzip
//codecs. Only the first map will be read!
func NewWriter(name string, header map[string]string, compressionLevel ...int) (*AmpW, error) {
	var level int = 9
	if len(compressionLevel) > 0 {
		level = compressionLevel[0]
	}
	S := new(AmpW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, err
	}
	zwriter := func(a io.Writer) (io.WriteCloser, error) {
		r, err := flate.NewWriter(a, level)
		return r, err
	}
	gzipwriter := func(a io.Writer) (io.WriteCloser, error) { return gzip.NewWriterLevel(a, level) }
	zstdwriter := func(a io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(a, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
	var AnyNewWriter func(io.Writer) (io.WriteCloser, error)
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return lzw.NewWriter(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewWriter = gzipwriter
	case 's':
		AnyNewWriter = zstdwriter
	case 'r':
		AnyNewWriter = zwriter
	default:
		AnyNewWriter = func(a io.Writer) (io.WriteCloser, error) { return plainw{a}, nil }
	}
	S.h, err = AnyNewWriter(S.f)
	if err != nil {
		return nil, Error{"Can't open for writing " + err.Error(), S.filename, []string{"NewWriter"}, true}
	}
	S.filename = name
	S.writeable = true
	S.prec = defaultPrec
	if header != nil {
		if p, ok := header["prec"]; ok {
			prec, err := strconv.Atoi(p)
			if err == nil && prec > 0 {
				S.prec = prec
			} else {
				log.Printf("Invalid precision for trace %s. Will use the default", S.filename)
			}
		}
		headerstr := ""
		for k, v := range header {
			headerstr += fmt.Sprintf("%s=%v\n", k, v)
		}
		S.h.Write([]byte(headerstr))
	}
	S.h.Write([]byte("**\n"))
	return S, nil
}

//Read!
type AmpR struct {
	f            *os.File
	zr           io.ReadCloser
	h            *bufio.Reader
	intermediate *bufio.Reader
	filename     string
	readable     bool
}

//This will cause additional indirections
//but I suppose it won't matter, as each call will
//take enough time to make those delays irrelevant.
//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

//New opens an amperometry trace for reading, and returns a pointer to the
//handle, a map with the header metadata (or an empty map, if the header is
//empty) and error or nil.
func New(name string) (*AmpR, map[string]string, error) {
	S := new(AmpR)
	m := map[string]string{}
	var err error
	S.filename = name
	S.f, err = os.Open(S.filename)
	if err != nil {
		return nil, nil, err
	}
	var AnyNewReader func(io.Reader) (io.ReadCloser, error)
	zreader := func(a io.Reader) (io.ReadCloser, error) {
		r := flate.NewReader(a)
		return r, nil
	}
	zstdreader := func(a io.Reader) (io.ReadCloser, error) {
		r, err := zstd.NewReader(a)
		var ql *stdql
		ql = &stdql{r.Close, r}
		return ql, err
	}
	gzreader := func(a io.Reader) (io.ReadCloser, error) { return gzip.NewReader(a) }
	switch strings.ToLower(name)[len(name)-1] {
	case 'l':
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return lzw.NewReader(a, lzw.MSB, lzwLitwidth), nil }
	case 'z':
		AnyNewReader = gzreader
	case 's':
		AnyNewReader = zstdreader
	case 'r':
		AnyNewReader = zreader
	default:
		AnyNewReader = func(a io.Reader) (io.ReadCloser, error) { return io.NopCloser(a), nil }
	}
	S.intermediate = bufio.NewReader(S.f)
	S.zr, err = AnyNewReader(S.intermediate)
	if err != nil {
		return nil, nil, Error{"Can't read header " + err.Error(), S.filename, []string{"New"}, true}
	}
	S.h = bufio.NewReader(S.zr)
	for {
		str, err := S.h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"Can't read header " + err.Error(), S.filename, []string{"New"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.Contains(str, "**") {
			break
		}
		kv := strings.Split(str, "=")
		if len(kv) != 2 {
			return nil, nil, Error{"Malformed header line: " + str, S.filename, []string{"New"}, true}
		}
		m[kv[0]] = kv[1]
	}
	S.readable = true
	return S, m, nil
}

//Readable returns true if the handle is readable (if it is possible to call Next on it)
func (S *AmpR) Readable() bool {
	return S.readable
}

func sampleDecode(str string) (float64, float64, error) {
	s := strings.Fields(str)
	if len(s) < 2 {
		return 0, 0, fmt.Errorf("Ill formated sample line in amp: Too few fields: %s", str)
	}
	if len(s) > 2 {
		return 0, 0, fmt.Errorf("Ill formated sample line in amp: Too many fields: %s", str)
	}
	t, err := strconv.ParseFloat(s[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Can't parse time (%s). Error: %s", s[0], err.Error())
	}
	c, err := strconv.ParseFloat(s[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("Can't parse current (%s). Error: %s", s[1], err.Error())
	}
	return t, c, nil
}

//Next returns the next sample of the trace: the time in seconds and the
//current in amperes. If the returned error implements
//electro.LastSampleError, the end of the trace has been reached, not an
//actual error.
func (S *AmpR) Next() (float64, float64, error) {
	if !S.readable {
		return 0, 0, Error{TraceUnIniRead, S.filename, []string{"Next"}, true}
	}
	b, err := S.h.ReadBytes('\n')
	if err != nil {
		if strings.Contains(err.Error(), "EOF") {
			//nothing bad happened here, the trace just ended.
			S.Close()
			return 0, 0, newlastSampleError(S.filename, "Next")
		}
		return 0, 0, Error{message: err.Error(), filename: S.filename, critical: true}
	}
	t, c, err := sampleDecode(string(b[:len(b)-1]))
	if err != nil {
		return 0, 0, Error{message: err.Error(), filename: S.filename, critical: true}
	}
	return t, c, nil
}

//ReadAll reads the remaining samples of the trace and returns them as a
//times slice and a currents slice, closing the handle.
func (S *AmpR) ReadAll() ([]float64, []float64, error) {
	times := make([]float64, 0, 100)
	currents := make([]float64, 0, 100)
	for {
		t, c, err := S.Next()
		if err != nil {
			if _, ok := err.(electro.LastSampleError); ok {
				return times, currents, nil
			}
			return nil, nil, errDecorate(err, "ReadAll")
		}
		times = append(times, t)
		currents = append(currents, c)
	}
}

//Close closes the handle. It can not be used after this call.
func (S *AmpR) Close() {
	if S == nil {
		return
	}
	if S.readable {
		S.zr.Close()
		S.f.Close()
	}
	S.readable = false
	return
}

//Errors

//errDecorate is a helper function that asserts that the error
//implements electro.Error and decorates the error with the caller's name before returning it.
//if used with a non-electro.Error error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(electro.Error) //I know that is the type returned by the readers
	err2.Decorate(caller)
	return err2
}

//Error is the general structure for amperometry trace errors. It fullfills electro.Error and electro.TraceError
type Error struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("amp file %s error: %s", err.filename, err.message)
}

//Decorate Adds new information to the error
func (E Error) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

//FileName returns the file to which the failing trace was associated
func (err Error) FileName() string { return err.filename }

//Format returns the format of the file (always "amp") associated to the error
func (err Error) Format() string { return "amp" }

//Critical returns true if the error is critical, false otherwise
func (err Error) Critical() bool { return err.critical }

const (
	TraceUnIniRead  = "Trace object uninitialized to read"
	TraceUnIniWrite = "Trace object uninitialized to write"
	UnableToOpen    = "Unable to open file"
	WrongFormat     = "Wrong format in the AMP file or sample"
)

//lastSampleError implements electro.LastSampleError
type lastSampleError struct {
	deco     []string
	fileName string
}

//lastSampleError does nothing
func (E lastSampleError) NormalLastSampleTermination() {}

func (E lastSampleError) FileName() string { return E.fileName }

func (E lastSampleError) Error() string { return "EOF" }

func (E lastSampleError) Critical() bool { return false }

func (E lastSampleError) Format() string { return "amp" }

func (E lastSampleError) Decorate(deco string) []string {
	//Even thought this method does not use a pointer as a receiver, and tries to alter the received,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func newlastSampleError(filename string, caller string) *lastSampleError {
	e := new(lastSampleError)
	e.fileName = filename
	e.deco = []string{caller}
	return e
}
