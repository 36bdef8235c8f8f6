// Package fingerprint gives users a way to visually confirm their master
// password without ever displaying it.
//
// The fingerprint is purely derived: an HMAC of a salt under the master
// password, rendered as three (color, icon) pairs picked from fixed tables of
// 14 colors and 46 font-awesome icons. Typing the wrong master password
// produces a different triple with overwhelming probability, while the triple
// itself reveals nothing useful about the password.
//
// # Usage
//
//	m, _ := masterkey.New("My5ecr3!", algo.SHA256)
//	fp := fingerprint.New(m, salt)
//	for _, el := range fp {
//	    fmt.Println(el.Color, el.Icon)
//	}
//
// # Error Handling
//
// Rendering is deterministic and total: no function in this package returns
// an error.
package fingerprint
