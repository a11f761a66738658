package model

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEvent(t *testing.T) {
	Convey("Given an event with capacity", t, func() {
		e := Event{MaxVolunteers: 8, CurrentVolunteers: 2}

		Convey("Then spots and fill ratio should follow the counts", func() {
			So(e.AvailableSpots(), ShouldEqual, 6)
			So(e.FillRatio(), ShouldEqual, 0.25)
		})

		Convey("When the event has no capacity", func() {
			e.MaxVolunteers, e.CurrentVolunteers = 0, 0

			Convey("Then the fill ratio should be zero", func() {
				So(e.FillRatio(), ShouldEqual, 0)
			})
		})
	})

	Convey("Given event statuses", t, func() {
		So(StatusUpcoming.Valid(), ShouldBeTrue)
		So(StatusCancelled.Valid(), ShouldBeTrue)
		So(EventStatus("archived").Valid(), ShouldBeFalse)
		So(EventStatus("").Valid(), ShouldBeFalse)
	})
}

func TestVolunteer(t *testing.T) {
	Convey("Given a volunteer with preferences", t, func() {
		v := Volunteer{Preferences: Preferences{EventTypes: []string{"education", "healthcare"}}}

		Convey("Then preferred types should be recognized", func() {
			So(v.PrefersType("education"), ShouldBeTrue)
			So(v.PrefersType("environmental"), ShouldBeFalse)
		})

		Convey("And a location without coordinates should report so", func() {
			So(v.Location.HasCoordinates(), ShouldBeFalse)
			v.Location.Coordinates = &Coordinates{Lat: 1, Lng: 2}
			So(v.Location.HasCoordinates(), ShouldBeTrue)
		})
	})
}

func TestTags(t *testing.T) {
	Convey("Given the closed vocabularies", t, func() {
		So(IsKnownSkill("teaching"), ShouldBeTrue)
		So(IsKnownSkill("juggling"), ShouldBeFalse)
		So(IsKnownCategory("disaster-relief"), ShouldBeTrue)
		So(IsKnownCategory("teaching"), ShouldBeFalse)
	})
}
