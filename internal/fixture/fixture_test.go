package fixture_test

import (
	"strings"
	"testing"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/rpggio/docseed/internal/fixture"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func TestDefault_Clients(t *testing.T) {
	set := fixture.Default()
	require.Equal(t, []client.Client{
		{ID: 1, Name: "Microsoft", Settings: client.Settings{CodeScanInterval: 10000}},
		{ID: 2, Name: "Apple", Settings: client.Settings{CodeScanInterval: 20000}},
		{ID: 3, Name: "Alphabet", Settings: client.Settings{CodeScanInterval: 5000}},
		{ID: 4, Name: "Meta", Settings: client.Settings{CodeScanInterval: 1000}},
	}, set.Clients)
}

func TestDefault_Projects(t *testing.T) {
	set := fixture.Default()
	require.Equal(t, []project.Project{
		{ID: 1, Name: "Linux"},
		{ID: 2, ClientID: intPtr(1), Name: "Windows 3.11 for Workgroups"},
		{ID: 3, ClientID: intPtr(1), Name: "XBox Fridge Firmware"},
		{ID: 4, ClientID: intPtr(2), Name: "IKettleOs"},
		{ID: 6, ClientID: intPtr(2), Name: "ICar Autopilot Brake on Kernel Panic"},
		{ID: 7, ClientID: intPtr(3), Name: "Brand new messenger to be buried next quarter"},
		{ID: 8, ClientID: intPtr(4), Name: "User data automatic seller"},
	}, set.Projects)

	// id 5 is a deliberate gap
	require.NotContains(t, set.ProjectIDs(), 5)
}

func TestDefault_Counters(t *testing.T) {
	set := fixture.Default()
	require.Equal(t, []counter.Counter{
		{Name: "clients", Seq: 5},
		{Name: "projects", Seq: 9},
	}, set.Counters)

	clients, ok := set.Counter(counter.Clients)
	require.True(t, ok)
	require.Greater(t, clients.Seq, set.MaxClientID())

	projects, ok := set.Counter(counter.Projects)
	require.True(t, ok)
	require.Greater(t, projects.Seq, set.MaxProjectID())
}

func TestDefault_PassesCheck(t *testing.T) {
	require.NoError(t, fixture.Default().Check())
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := fixture.Default()
	a.Clients[0].Name = "changed"
	*a.Projects[1].ClientID = 99

	b := fixture.Default()
	require.Equal(t, "Microsoft", b.Clients[0].Name)
	require.Equal(t, 1, *b.Projects[1].ClientID)
}

func TestCheck_DuplicateIDs(t *testing.T) {
	set := fixture.Default()
	set.Clients = append(set.Clients, client.Client{ID: 2, Name: "Apple again"})
	set.Projects = append(set.Projects, project.Project{ID: 8, Name: "dup"})

	err := set.Check()
	require.ErrorIs(t, err, fixture.ErrInvalidFixture)
	require.ErrorIs(t, err, client.ErrDuplicateID)
	require.ErrorIs(t, err, project.ErrDuplicateID)
}

func TestCheck_DanglingClientReference(t *testing.T) {
	set := fixture.Default()
	set.Projects = append(set.Projects, project.Project{ID: 9, ClientID: intPtr(42), Name: "orphan"})
	set.Counters[1].Seq = 10

	err := set.Check()
	require.ErrorIs(t, err, project.ErrUnknownClient)
}

func TestCheck_CounterBelowMaxID(t *testing.T) {
	set := fixture.Default()
	set.Counters[0].Seq = 3

	err := set.Check()
	require.ErrorIs(t, err, counter.ErrSeqTooLow)
}

func TestCheck_UnknownCounter(t *testing.T) {
	set := fixture.Default()
	set.Counters = append(set.Counters, counter.Counter{Name: "users", Seq: 1})

	err := set.Check()
	require.ErrorIs(t, err, counter.ErrUnknownCounter)
}

func TestLoad(t *testing.T) {
	set, err := fixture.Load(strings.NewReader(`
clients:
  - {id: 10, name: "Acme", settings: {code_scan_interval: 60000}}
projects:
  - {id: 20, client_id: 10, name: "Rockets"}
counters:
  - {_id: clients, seq: 10}
  - {_id: projects, seq: 20}
`))
	require.NoError(t, err)
	require.NoError(t, set.Check())
	require.Equal(t, []int{10}, set.ClientIDs())
	require.Equal(t, 10, *set.Projects[0].ClientID)
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := fixture.Load(strings.NewReader("users: []\n"))
	require.ErrorIs(t, err, fixture.ErrInvalidFixture)
}

func TestRaw_MatchesDefault(t *testing.T) {
	set, err := fixture.Load(strings.NewReader(string(fixture.Raw())))
	require.NoError(t, err)
	require.Equal(t, fixture.Default(), set)
}
