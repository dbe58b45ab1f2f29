package testfixtures

// SCORM12HappyPath builds a minimal well-formed SCORM 1.2 package: one
// organization "org-id" (also the default), one item referencing resource
// "res-id" with href "index.html".
func SCORM12HappyPath() *MemoryAccess {
	return NewMemoryAccess("scorm12-happy", map[string]string{
		"imsmanifest.xml": `<?xml version="1.0"?>
<manifest identifier="course-1" version="1.0">
  <organizations default="org-id">
    <organization identifier="org-id">
      <title>Course One</title>
      <item identifier="item-1" identifierref="res-id">
        <title>Lesson One</title>
      </item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="res-id" type="webcontent" scormtype="sco" href="index.html">
      <file href="index.html"/>
    </resource>
  </resources>
</manifest>`,
		"index.html": "<html></html>",
	})
}

// SCORM12DefaultOrgTypo builds the same package as SCORM12HappyPath but
// with default="typo-id", which does not resolve, so the single
// organization is used as a fallback.
func SCORM12DefaultOrgTypo() *MemoryAccess {
	return NewMemoryAccess("scorm12-typo", map[string]string{
		"imsmanifest.xml": `<?xml version="1.0"?>
<manifest identifier="course-1" version="1.0">
  <organizations default="typo-id">
    <organization identifier="org-id">
      <title>Course One</title>
      <item identifier="item-1" identifierref="res-id">
        <title>Lesson One</title>
      </item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="res-id" type="webcontent" scormtype="sco" href="index.html">
      <file href="index.html"/>
    </resource>
  </resources>
</manifest>`,
		"index.html": "<html></html>",
	})
}

// SCORM2004FullSequencing builds one organization with two items, the
// second carrying a primary objective mapped to a global objective and a
// rollup rule, which classifies as sequencing_level=full.
func SCORM2004FullSequencing() *MemoryAccess {
	return NewMemoryAccess("scorm2004-full", map[string]string{
		"imsmanifest.xml": `<?xml version="1.0"?>
<manifest identifier="course-2" version="1.0"
  xmlns:adlcp="http://www.adlnet.org/xsd/adlcp_v1p3"
  xmlns:imsss="http://www.imsglobal.org/xsd/imsss">
  <organizations default="org-2">
    <organization identifier="org-2">
      <title>Course Two</title>
      <item identifier="item-1" identifierref="res-1">
        <title>Lesson One</title>
      </item>
      <item identifier="item-2" identifierref="res-2">
        <title>Lesson Two</title>
        <imsss:sequencing>
          <imsss:objectives>
            <imsss:primaryObjective objectiveID="course_score" satisfiedByMeasure="true">
              <imsss:mapInfo targetObjectiveID="com.x.course_score"
                readSatisfiedStatus="false" readNormalizedMeasure="true"/>
            </imsss:primaryObjective>
          </imsss:objectives>
          <imsss:rollupRuleSet>
            <imsss:rollupRule childActivitySet="all">
              <imsss:rollupConditions>
                <imsss:rollupCondition condition="completed"/>
              </imsss:rollupConditions>
              <imsss:rollupAction action="satisfied"/>
            </imsss:rollupRule>
          </imsss:rollupRuleSet>
        </imsss:sequencing>
      </item>
    </organization>
  </organizations>
  <resources>
    <resource identifier="res-1" type="webcontent" scormtype="sco" href="lesson1.html">
      <file href="lesson1.html"/>
    </resource>
    <resource identifier="res-2" type="webcontent" scormtype="sco" href="lesson2.html">
      <file href="lesson2.html"/>
    </resource>
  </resources>
</manifest>`,
		"lesson1.html": "<html></html>",
		"lesson2.html": "<html></html>",
	})
}

// AICCMinimumViable builds a minimal viable AICC course: a.crs with a
// recognized course title key, a.des, a.au with one row whose web-launch
// field is "start.html", a.cst with a single root row.
func AICCMinimumViable() *MemoryAccess {
	return NewMemoryAccess("aicc-min", map[string]string{
		"a.crs": "[Course_Data]\nCourse_Title=Hello\nCourse_ID=HELLO101\n\n[Course_Description]\nCourse_Description=A minimal AICC course\n",
		"a.des": "system_id,title,description\nAU1,Unit One,First unit\n",
		"a.au":  "system_id,type,file_name,mastery_score,max_time_allowed,time_limit_action,core_vendor\nAU1,normal,start.html,80,01:00:00,continue,\n",
		"a.cst": "block,member\nROOT,AU1\n",
	})
}

// CMI5AlwaysXAPI builds a cmi5.xml with title "T", one AU with URL
// "launch.html".
func CMI5AlwaysXAPI() *MemoryAccess {
	return NewMemoryAccess("cmi5-xapi", map[string]string{
		"cmi5.xml": `<?xml version="1.0"?>
<courseStructure>
  <course id="https://example.com/course">
    <title><langstring lang="en">T</langstring></title>
    <description><langstring lang="en">Description</langstring></description>
  </course>
  <au id="https://example.com/au1" launchMethod="AnyWindow" moveOn="Completed">
    <title><langstring lang="en">AU One</langstring></title>
    <description><langstring lang="en">First AU</langstring></description>
    <url>launch.html</url>
  </au>
</courseStructure>`,
		"launch.html": "<html></html>",
	})
}

// XAPICourseActivity builds a minimal tincan.xml with a course-level
// activity, for the xAPI parser's own happy-path test.
func XAPICourseActivity() *MemoryAccess {
	return NewMemoryAccess("xapi-course", map[string]string{
		"tincan.xml": `<?xml version="1.0"?>
<tincan xmlns="http://projecttincan.com/tincan.xsd">
  <activities>
    <activity id="https://example.com/course">
      <activitydefinition>
        <type>http://adlnet.gov/expapi/activities/course</type>
        <name><langstring lang="en">Course Name</langstring></name>
        <description><langstring lang="en">Course Description</langstring></description>
        <launch lang="en">index.html</launch>
      </activitydefinition>
    </activity>
  </activities>
</tincan>`,
		"index.html": "<html></html>",
	})
}

// DetectionFailure builds a package whose root contains only readme.txt,
// matching no known format.
func DetectionFailure() *MemoryAccess {
	return NewMemoryAccess("detect-fail", map[string]string{
		"readme.txt": "nothing to see here",
	})
}
