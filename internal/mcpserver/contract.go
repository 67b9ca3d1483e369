package mcpserver

// RuleReference describes how display rules choose the menu of a document.
const RuleReference = `# Global Menu Rule Reference

A configuration holds menus and display rules. For every document exactly
one menu is shown, or none.

## Rule types

| type   | value                         | matches when                               |
|--------|-------------------------------|--------------------------------------------|
| note   | document basename             | the basename equals the value              |
| tag    | tag without "#"               | the document carries the tag               |
| folder | folder path ending in "/"     | the document's folder equals the value     |
| regex  | ECMAScript regular expression | the pattern matches the document path      |
| all    | "*"                           | always                                     |

The root folder is "/". A document in "projects/2024" has the folder path
"projects/2024/".

## Evaluation

1. Enabled rules are tried by type: note, tag, folder, regex, all.
   Rules of the same type keep their stored order.
2. The first matching rule whose menu is enabled and has at least one
   enabled item wins.
3. The base rule (id "base-all-notes-rule") is tried last, only when it is
   enabled.
4. An invalid regular expression never matches; evaluation continues.

## Fixed parts

- The main menu ("main-menu") cannot be removed and keeps its name.
- The base rule cannot be removed; it can be disabled or retargeted.
- Removing a menu retargets its rules to the main menu.
`
