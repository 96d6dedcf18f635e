// Package taskmatch is a Go client for the taskmatch recommendation service.
//
//	client, _ := taskmatch.New("http://localhost:5001", taskmatch.WithAPIKey(key))
//	resp, err := client.Recommend(ctx, taskmatch.Request{
//	    TaskDescription: "needs python backend experience",
//	    PotentialAssignees: []taskmatch.Assignee{
//	        {ID: taskmatch.IntID(1), Name: "A", Skills: []string{"python", "backend"}},
//	        {ID: taskmatch.StringID("b"), Name: "B", Skills: []string{"design", "figma"}},
//	    },
//	})
//	if errors.Is(err, taskmatch.ErrInvalidInput) { ... }
//
// Recommendations come back best match first with scores in [0, 1].
package taskmatch
