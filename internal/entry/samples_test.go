// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entry_test

import (
	"time"

	"github.com/taibuivan/blogadmin/internal/entry"
	"github.com/taibuivan/blogadmin/pkg/pointer"
)

func sampleDate(text string) *time.Time {
	parsed, err := time.ParseInLocation("2006-01-02T15:04", text, time.UTC)
	if err != nil {
		panic(err)
	}
	return &parsed
}

func sampleWithRequiredData() *entry.Entry {
	return &entry.Entry{
		ID:      pointer.To[int64](62831),
		Title:   pointer.To("calculating functionalities"),
		Content: pointer.To("deliver"),
		Date:    sampleDate("2022-10-13T09:42"),
	}
}

func sampleWithPartialData() *entry.Entry {
	return &entry.Entry{
		ID:      pointer.To[int64](17376),
		Title:   pointer.To("calculating"),
		Content: pointer.To("Venezuela initiatives Chicken"),
		Date:    sampleDate("2022-10-13T16:33"),
	}
}

func sampleWithNewData() *entry.Entry {
	return &entry.Entry{
		Title:   pointer.To("withdrawal Cheese"),
		Content: pointer.To("invoice"),
		Date:    sampleDate("2022-10-13T09:50"),
	}
}
