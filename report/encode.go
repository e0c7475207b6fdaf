// SPDX-License-Identifier: MIT

package report

import (
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"gopkg.in/yaml.v3"
)

// encode writes v in format f. Text output is produced by text into a buffer
// and flushed with a single Write.
func encode(op string, w io.Writer, f Format, v any, text func(sb *strings.Builder)) error {
	var (
		data []byte
		err  error
	)
	switch f {
	case Text:
		var sb strings.Builder
		text(&sb)
		data = []byte(sb.String())
	case JSON:
		data, err = sonic.MarshalIndent(v, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case YAML:
		data, err = yaml.Marshal(v)
	default:
		return reportErrorf(op, ErrUnknownFormat)
	}
	if err != nil {
		return reportErrorf(op, err)
	}
	if _, err = w.Write(data); err != nil {
		return reportErrorf(op, err)
	}

	return nil
}

