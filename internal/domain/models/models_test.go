package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentFlags(t *testing.T) {
	flags := DecodeAppointmentFlags(AppointmentPrivate | AppointmentAlarm | AppointmentExported)
	assert.Equal(t, AppointmentFlags{Private: true, Alarm: true, Exported: true}, flags)
	assert.Equal(t, AppointmentPrivate|AppointmentAlarm|AppointmentExported, flags.Encode())

	assert.Equal(t, AppointmentPublic, AppointmentFlags{Public: true, Private: true}.Encode())
	assert.Equal(t, AppointmentPublic|AppointmentDone, SetPublic(AppointmentPrivate|AppointmentDone))
	assert.Equal(t, AppointmentPrivate|AppointmentDone, SetPrivate(AppointmentPublic|AppointmentDone))
}

func TestEffectiveMembership(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	future := now.AddDate(0, 1, 0)
	past := now.AddDate(0, -1, 0)

	assert.Equal(t, MembershipBasic, HouseholdMember{Membership: MembershipBasic}.EffectiveMembership(now))
	assert.Equal(t, MembershipDeluxe, HouseholdMember{Membership: MembershipDeluxe, MembershipExpireTime: &future}.EffectiveMembership(now))
	assert.Equal(t, MembershipBasic, HouseholdMember{Membership: MembershipPremium, MembershipExpireTime: &past}.EffectiveMembership(now))
	assert.Equal(t, MembershipBasic, HouseholdMember{Membership: MembershipPremium}.EffectiveMembership(now))
}

func TestMembershipLimits(t *testing.T) {
	assert.Equal(t, 1, MembershipBasic.HouseholdLimit())
	assert.Equal(t, 2, MembershipDeluxe.HouseholdLimit())
	assert.Equal(t, 99, MembershipPremium.HouseholdLimit())

	m, ok := ParseMembership("deluxe")
	assert.True(t, ok)
	assert.Equal(t, MembershipDeluxe, m)
	_, ok = ParseMembership("gold")
	assert.False(t, ok)
}

func TestDate(t *testing.T) {
	loc := time.FixedZone("CEST", 2*60*60)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), Date(time.Date(2024, 3, 5, 23, 30, 0, 0, loc)))
}
