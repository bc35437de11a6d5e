package marvel

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "api timestamp", input: `"2019-09-13T12:44:15-0400"`, want: time.Date(2019, 9, 13, 16, 44, 15, 0, time.UTC)},
		{name: "rfc3339", input: `"2019-09-13T12:44:15Z"`, want: time.Date(2019, 9, 13, 12, 44, 15, 0, time.UTC)},
		{name: "event timestamp", input: `"2012-04-04 00:00:00"`, want: time.Date(2012, 4, 4, 0, 0, 0, 0, time.UTC)},
		{name: "date only", input: `"2012-04-04"`, want: time.Date(2012, 4, 4, 0, 0, 0, 0, time.UTC)},
		{name: "sentinel", input: `"-0001-11-30T00:00:00-0500"`},
		{name: "null", input: `null`},
		{name: "garbage", input: `"next tuesday"`, wantErr: true},
		{name: "number", input: `20120404`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %v want %v", d.Time, tt.want)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	d := Date{Time: time.Date(2012, 4, 4, 0, 0, 0, 0, time.UTC)}
	data, err := json.Marshal(d)
	assert.NoError(t, err)
	assert.Equal(t, `"2012-04-04T00:00:00+0000"`, string(data))

	data, err = json.Marshal(Date{})
	assert.NoError(t, err)
	assert.Equal(t, `null`, string(data))
}
