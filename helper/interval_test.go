package helper

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "ทับกันบางส่วน",
			a:    Interval{at(9, 0), at(10, 30)},
			b:    Interval{at(10, 0), at(11, 0)},
			want: true,
		},
		{
			name: "จองต่อกันพอดีไม่ชน",
			a:    Interval{at(9, 0), at(10, 0)},
			b:    Interval{at(10, 0), at(11, 0)},
			want: false,
		},
		{
			name: "เหลื่อมหนึ่งนาทีถือว่าชน",
			a:    Interval{at(9, 0), at(10, 0)},
			b:    Interval{at(9, 59), at(11, 0)},
			want: true,
		},
		{
			name: "ช่วงเดียวกันทั้งหมด",
			a:    Interval{at(9, 0), at(10, 0)},
			b:    Interval{at(9, 0), at(10, 0)},
			want: true,
		},
		{
			name: "ช่วงหนึ่งครอบอีกช่วง",
			a:    Interval{at(8, 0), at(12, 0)},
			b:    Interval{at(9, 0), at(10, 0)},
			want: true,
		},
		{
			name: "แยกกันคนละช่วง",
			a:    Interval{at(8, 0), at(9, 0)},
			b:    Interval{at(13, 0), at(14, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			// ต้องสมมาตร สลับลำดับแล้วผลเหมือนเดิม
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInterval(t *testing.T) {
	if _, err := NewInterval(at(9, 0), at(10, 0)); err != nil {
		t.Fatalf("valid interval rejected: %v", err)
	}

	if _, err := NewInterval(at(10, 0), at(10, 0)); err == nil {
		t.Error("zero-length interval accepted")
	}
	if _, err := NewInterval(at(11, 0), at(10, 0)); err == nil {
		t.Error("reversed interval accepted")
	}
}

func TestIntervalValid(t *testing.T) {
	if (Interval{at(9, 0), at(9, 0)}).Valid() {
		t.Error("start == end should be invalid")
	}
	if !(Interval{at(9, 0), time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC)}).Valid() {
		t.Error("multi-day interval should be valid")
	}
}
